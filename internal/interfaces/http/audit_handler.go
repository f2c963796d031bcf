package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

// AuditHandler expõe a consulta da trilha de auditoria.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler constrói o handler de auditoria.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Consultar trilha de auditoria
// @Tags         audit-log
// @Produce      json
// @Security     BearerAuth
// @Param        user_id   query  string  false  "filtra pelo autor"
// @Param        acao      query  string  false  "CREATE | UPDATE | DELETE"
// @Param        entidade  query  string  false  "Company | Product"
// @Success      200  {array}   dto.AuditLogResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /audit-log [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	filter := repository.AuditLogFilter{
		UserID:   c.Query("user_id"),
		Acao:     c.Query("acao"),
		Entidade: c.Query("entidade"),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
