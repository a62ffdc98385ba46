package financeiro

import (
	"time"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

func listFilter(c tenant.Caller, requested string, page *dto.PageRequest, busca string) (repository.ListFilter, error) {
	empresaID, err := tenant.Resolve(c, requested)
	if err != nil {
		return repository.ListFilter{}, err
	}
	page.DefaultPage()
	return repository.ListFilter{
		EmpresaID: empresaID,
		Busca:     texto.Normalizar(busca),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}, nil
}

func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func dateToTime(d *dto.Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func hasModulo(p *entity.Produto, moduloID string) bool {
	for _, m := range p.Modulos {
		if m.ID == moduloID {
			return true
		}
	}
	return false
}
