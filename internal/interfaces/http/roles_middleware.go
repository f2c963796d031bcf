package http

import (
	"github.com/gofiber/fiber/v2"
)

// RequireCargo devolve um middleware que autoriza a rota para identidades com
// um dos cargos informados, avaliado pelo resolvedor de papéis da Identity
// (ADMIN global passa sempre; o cargo pode vir de qualquer vínculo). Deve ser
// usado DEPOIS do AuthMiddleware.
func RequireCargo(cargos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identidade := GetIdentity(c)
		if identidade == nil {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !identidade.Autorizado(cargos...) {
			return respondError(c, fiber.StatusForbidden, "Acesso negado: permissão insuficiente.")
		}
		return c.Next()
	}
}

// RequireVinculo devolve um middleware que autoriza o acesso a recursos de
// uma empresa específica (o ID vem do parâmetro de rota). Predicado distinto
// do RequireCargo: aqui vale o empresa_id do vínculo, não o cargo. Deve ser
// usado DEPOIS do AuthMiddleware.
func RequireVinculo(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identidade := GetIdentity(c)
		if identidade == nil {
			return respondError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !identidade.VinculadoAEmpresa(c.Params(param)) {
			return respondError(c, fiber.StatusForbidden, "Acesso negado: você não está vinculado a esta empresa.")
		}
		return c.Next()
	}
}
