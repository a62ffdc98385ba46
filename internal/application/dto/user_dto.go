package dto

import "time"

// CreateUserRequest entrada para criar um usuário (senha em texto, o hash é feito no use case).
// EmpresaID vazio usa a empresa de quem chama.
type CreateUserRequest struct {
	EmpresaID   string `json:"empresaId" validate:"omitempty,uuid"`
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required,oneof=admin user"`
	GlobalAdmin bool   `json:"globalAdmin"`
}

// UpdateUserRequest entrada para atualizar um usuário (campos opcionais).
type UpdateUserRequest struct {
	Nome        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Role        *string `json:"role" validate:"omitempty,oneof=admin user"`
	GlobalAdmin *bool   `json:"globalAdmin"`
	Ativo       *bool   `json:"ativo"`
}

// ChangePasswordRequest troca de senha. SenhaAtual é exigida quando o próprio usuário troca.
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=8"`
}

// UserResponse saída de um usuário (sem senha).
type UserResponse struct {
	ID          string    `json:"id"`
	EmpresaID   string    `json:"empresaId"`
	Nome        string    `json:"nome"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	GlobalAdmin bool      `json:"globalAdmin"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LoginRequest entrada do login. EmpresaID desempata quando o email existe em mais de uma empresa.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	EmpresaID string `json:"empresaId" validate:"omitempty,uuid"`
}

// LoginResponse token JWT e usuário autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // segundos
	User      UserResponse `json:"user"`
}
