package entity

import "time"

// Empresa representa o tenant do sistema: quase toda entidade pertence a uma Empresa.
type Empresa struct {
	ID        string
	Nome      string
	CNPJ      string // apenas dígitos, único no sistema
	Email     string
	Telefone  string
	Endereco  string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
