package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão do JWT e os campos próprios da aplicação.
// Role e GlobalAdmin permitem que o middleware decida sem consultar o banco.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string `json:"user_id"`
	EmpresaID   string `json:"empresa_id"`
	Role        string `json:"role"` // "admin" | "user"
	GlobalAdmin bool   `json:"global_admin,omitempty"`
}

// Identity dados do usuário autenticado carregados no token.
type Identity struct {
	UserID      string
	EmpresaID   string
	Role        string
	GlobalAdmin bool
}

// Generate gera um token JWT assinado (HS256) com a identidade do usuário.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      id.UserID,
		EmpresaID:   id.EmpresaID,
		Role:        id.Role,
		GlobalAdmin: id.GlobalAdmin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve a identidade.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" || claims.EmpresaID == "" {
		return Identity{}, fmt.Errorf("claims incompletos")
	}
	return Identity{
		UserID:      claims.UserID,
		EmpresaID:   claims.EmpresaID,
		Role:        claims.Role,
		GlobalAdmin: claims.GlobalAdmin,
	}, nil
}
