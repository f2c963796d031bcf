package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// AuditLogFilter filtros opcionais da listagem de auditoria (campo vazio =
// sem filtro).
type AuditLogFilter struct {
	UserID   string
	Acao     string
	Entidade string
}

// AuditLogRepository define a porta da trilha de auditoria. Só há Create e
// List: registros de auditoria nunca são alterados nem removidos.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	// List devolve os registros em ordem decrescente de criação, com email e
	// nome do autor quando o usuário ainda existe.
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
