package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
)

func categoryFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad Request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusForbidden:
		return "Forbidden"
	case fiber.StatusNotFound:
		return "Not Found"
	case fiber.StatusConflict:
		return "Conflict"
	case fiber.StatusTooManyRequests:
		return "Too Many Requests"
	default:
		return "Internal Server Error"
	}
}

func envelope(c *fiber.Ctx, status int, message any, category string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      category,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Path(),
	})
}

// respondError responde qualquer falha com o envelope uniforme da API.
func respondError(c *fiber.Ctx, status int, message any) error {
	return envelope(c, status, message, categoryFor(status))
}

// respondValidation responde 400 com a lista AGREGADA de erros de campo
// (todos os erros, não só o primeiro).
func respondValidation(c *fiber.Ctx, msgs []string) error {
	return envelope(c, fiber.StatusBadRequest, msgs, "Validation Error")
}

// respondDomainError traduz sentinelas de domínio para o envelope HTTP. Erros
// de store não mapeados nunca vazam a forma interna: viram 500 genérico.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respondError(c, fiber.StatusConflict, "E-mail já cadastrado.")
	case errors.Is(err, domain.ErrUniqueViolation):
		return respondError(c, fiber.StatusConflict, "Já existe um registro com esse valor único.")
	case errors.Is(err, domain.ErrVinculoObrigatorio):
		return respondError(c, fiber.StatusBadRequest, "Usuário comum deve informar empresa_id e cargo.")
	case errors.Is(err, domain.ErrEmpresaInvalida):
		return respondError(c, fiber.StatusBadRequest, "Empresa informada não existe.")
	case errors.Is(err, domain.ErrUnauthorized):
		return respondError(c, fiber.StatusUnauthorized, "E-mail ou senha inválidos.")
	case errors.Is(err, domain.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "Registro não encontrado.")
	case errors.Is(err, domain.ErrForbidden):
		return respondError(c, fiber.StatusForbidden, "Acesso negado: permissão insuficiente.")
	default:
		return respondError(c, fiber.StatusInternalServerError, "Erro interno do servidor")
	}
}
