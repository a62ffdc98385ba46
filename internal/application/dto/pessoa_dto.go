package dto

import "time"

// CreatePessoaRequest entrada para criar cliente ou fornecedor (o tipo vem da rota).
type CreatePessoaRequest struct {
	EmpresaID   string  `json:"empresaId" validate:"omitempty,uuid"`
	Nome        string  `json:"nome" validate:"required,min=1,max=200"`
	RazaoSocial string  `json:"razaoSocial" validate:"omitempty,max=200"`
	Documento   string  `json:"documento" validate:"required,min=11,max=20"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Telefone    string  `json:"telefone" validate:"omitempty,max=30"`
	Endereco    string  `json:"endereco" validate:"omitempty,max=300"`
	Cidade      string  `json:"cidade" validate:"omitempty,max=100"`
	UF          string  `json:"uf" validate:"omitempty,len=2"`
	CEP         string  `json:"cep" validate:"omitempty,max=10"`
	CategoriaID *string `json:"categoriaId" validate:"omitempty,uuid"`
	Observacoes string  `json:"observacoes"`
}

// UpdatePessoaRequest entrada para atualizar cliente ou fornecedor (campos opcionais).
type UpdatePessoaRequest struct {
	Nome        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	RazaoSocial *string `json:"razaoSocial" validate:"omitempty,max=200"`
	Documento   *string `json:"documento" validate:"omitempty,min=11,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Telefone    *string `json:"telefone" validate:"omitempty,max=30"`
	Endereco    *string `json:"endereco" validate:"omitempty,max=300"`
	Cidade      *string `json:"cidade" validate:"omitempty,max=100"`
	UF          *string `json:"uf" validate:"omitempty,len=2"`
	CEP         *string `json:"cep" validate:"omitempty,max=10"`
	CategoriaID *string `json:"categoriaId" validate:"omitempty,uuid"`
	Observacoes *string `json:"observacoes"`
	Ativo       *bool   `json:"ativo"`
}

// PessoaResponse saída de cliente ou fornecedor.
type PessoaResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresaId"`
	Tipo        string    `json:"tipo"`
	Nome        string    `json:"nome"`
	RazaoSocial string    `json:"razaoSocial,omitempty"`
	Documento   string    `json:"documento"`
	Email       string    `json:"email,omitempty"`
	Telefone    string    `json:"telefone,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	Cidade      string    `json:"cidade,omitempty"`
	UF          string    `json:"uf,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	CategoriaID *string   `json:"categoriaId,omitempty"`
	Observacoes string    `json:"observacoes,omitempty"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
