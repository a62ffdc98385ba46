package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Afiliado indica clientes à empresa e recebe comissão via contas a pagar geradas.
type Afiliado struct {
	ID                 string
	EmpresaID          string
	Nome               string
	Documento          string
	Email              string
	Telefone           string
	PercentualComissao decimal.Decimal // 0..100
	Ativo              bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
