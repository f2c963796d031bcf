package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config parâmetros de emissão e validação de tokens. É construída
// explicitamente no startup e injetada onde for usada — sem global escondida,
// o que permite testes com secrets distintos por execução.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// EmpresaClaim vínculo empresa/cargo embutido no token.
type EmpresaClaim struct {
	EmpresaID   string `json:"empresa_id"`
	Cargo       string `json:"cargo"`
	EmpresaNome string `json:"empresa_nome,omitempty"`
}

// Claims inclui os claims padrão JWT mais os campos da aplicação. O token é a
// única fonte de identidade do request: a validação não consulta o banco, e
// os vínculos refletem o estado no momento da emissão.
type Claims struct {
	jwt.RegisteredClaims
	Email    string         `json:"email"`
	Nome     string         `json:"nome"`
	Role     string         `json:"role"` // ADMIN | USER
	Empresas []EmpresaClaim `json:"empresas,omitempty"`
}

// Generate gera um token HS256 assinado com sub = userID e os claims da
// aplicação, com issued-at e expiração a partir da Config.
func Generate(cfg Config, userID, email, nome, role string, empresas []EmpresaClaim) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpMinutes) * time.Minute)),
		},
		Email:    email,
		Nome:     nome,
		Role:     role,
		Empresas: empresas,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida assinatura e expiração e devolve os claims. Retorna erro se o
// token é inválido, expirado ou assinado com método/secret diferente.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
