package usecase

import (
	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/tenant"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	"github.com/jhoicas/BusinessHub-api/pkg/texto"
)

// listFilter monta o filtro de listagem já com empresa resolvida e página normalizada.
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

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

// emptyToNil trata "" vindo do JSON como ausência de vínculo.
func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}
