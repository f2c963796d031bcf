package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/domain/authz"
	"github.com/jhoicas/empresas-api/pkg/jwt"
)

// Local key da identidade autenticada no contexto Fiber.
const localIdentity = "identity"

// AuthMiddleware valida o Bearer Token JWT e reconstrói a Identity a partir
// dos claims, antes de qualquer lógica de handler. Validação pura: nenhuma
// consulta ao banco. Header ausente, token malformado, assinatura inválida ou
// expiração respondem 401.
func AuthMiddleware(jwtCfg jwt.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		claims, err := jwt.Parse(jwtCfg, tokenString)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		identidade := &authz.Identity{
			UserID: claims.Subject,
			Email:  claims.Email,
			Nome:   claims.Nome,
			Role:   claims.Role,
		}
		for _, e := range claims.Empresas {
			identidade.Empresas = append(identidade.Empresas, authz.EmpresaVinculo{
				EmpresaID:   e.EmpresaID,
				Cargo:       e.Cargo,
				EmpresaNome: e.EmpresaNome,
			})
		}
		c.Locals(localIdentity, identidade)
		return c.Next()
	}
}

// GetIdentity devolve a identidade autenticada do contexto, ou nil se a rota
// não passou pelo AuthMiddleware.
func GetIdentity(c *fiber.Ctx) *authz.Identity {
	v := c.Locals(localIdentity)
	if v == nil {
		return nil
	}
	id, _ := v.(*authz.Identity)
	return id
}
