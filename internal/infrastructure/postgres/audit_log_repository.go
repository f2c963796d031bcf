package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementação da trilha de auditoria sobre PostgreSQL.
// Append-only: não há Update nem Delete.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository constrói o adaptador da trilha de auditoria.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create grava um registro de auditoria. Sem FK para users: a trilha tolera
// referência a usuário já removido.
func (r *AuditLogRepo) Create(ctx context.Context, entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, user_id, acao, entidade, entidade_id, detalhes, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Acao, entry.Entidade, entry.EntidadeID,
		entry.Detalhes, entry.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devolve os registros mais recentes primeiro, com email e nome do autor
// via LEFT JOIN (vazios quando o usuário já não existe).
func (r *AuditLogRepo) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := `
		SELECT a.id, a.user_id, a.acao, a.entidade, a.entidade_id, a.detalhes, a.criado_em,
		       COALESCE(u.email, ''), COALESCE(u.nome, '')
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ($1 = '' OR a.user_id = $1)
		  AND ($2 = '' OR a.acao = $2)
		  AND ($3 = '' OR a.entidade = $3)
		ORDER BY a.criado_em DESC`
	rows, err := r.q.Query(ctx, query, filter.UserID, filter.Acao, filter.Entidade)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuditLog
	for rows.Next() {
		var e entity.AuditLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Acao, &e.Entidade, &e.EntidadeID, &e.Detalhes,
			&e.CriadoEm, &e.UserEmail, &e.UserNome); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
