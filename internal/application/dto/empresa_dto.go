package dto

import "time"

// CreateEmpresaRequest entrada para criar uma empresa.
type CreateEmpresaRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	CNPJ     string `json:"cnpj" validate:"required,min=11,max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Telefone string `json:"telefone" validate:"omitempty,max=30"`
	Endereco string `json:"endereco" validate:"omitempty,max=300"`
}

// UpdateEmpresaRequest entrada para atualizar uma empresa (campos opcionais).
type UpdateEmpresaRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
	Endereco *string `json:"endereco" validate:"omitempty,max=300"`
	Ativo    *bool   `json:"ativo"`
}

// EmpresaResponse saída de uma empresa.
type EmpresaResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Endereco  string    `json:"endereco"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
