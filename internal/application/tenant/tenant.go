// Package tenant resolve a empresa efetiva de cada operação a partir de quem chama.
package tenant

import (
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

// Caller identidade autenticada (vinda do JWT).
type Caller struct {
	UserID      string
	EmpresaID   string
	Role        string
	GlobalAdmin bool
}

// IsAdmin informa se o usuário tem papel admin na própria empresa.
func (c Caller) IsAdmin() bool { return c.Role == entity.RoleAdmin }

// Resolve devolve a empresa sobre a qual a operação age.
// Admin global usa requested quando informado; os demais só podem agir na própria empresa.
func Resolve(c Caller, requested string) (string, error) {
	if requested == "" || requested == c.EmpresaID {
		return c.EmpresaID, nil
	}
	if c.GlobalAdmin {
		return requested, nil
	}
	return "", domain.ErrForbidden
}

// CanAccess informa se o registro de empresaID é visível para quem chama.
// Use cases respondem ErrNotFound quando false, para não revelar registros de outras empresas.
func CanAccess(c Caller, empresaID string) bool {
	return c.GlobalAdmin || c.EmpresaID == empresaID
}
