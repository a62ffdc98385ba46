package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa um usuário do sistema (pertence a uma Empresa).
// GlobalAdmin permite operar sobre qualquer empresa via ?empresaId=.
type User struct {
	ID           string
	EmpresaID    string
	Nome         string
	Email        string
	PasswordHash string // hash bcrypt, nunca a senha em texto
	Role         string // admin, user
	GlobalAdmin  bool
	Ativo        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
