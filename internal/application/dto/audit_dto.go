package dto

import "time"

// AuditLogUser autor do registro; omitido quando o usuário já foi removido.
type AuditLogUser struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

// AuditLogResponse saída de um registro da trilha de auditoria.
type AuditLogResponse struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Acao       string        `json:"acao"`
	Entidade   string        `json:"entidade"`
	EntidadeID string        `json:"entidade_id"`
	Detalhes   string        `json:"detalhes"`
	CriadoEm   time.Time     `json:"criado_em"`
	User       *AuditLogUser `json:"user,omitempty"`
}
