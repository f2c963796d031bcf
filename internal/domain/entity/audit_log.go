package entity

import "time"

// Ações registradas na trilha de auditoria.
const (
	AcaoCreate = "CREATE"
	AcaoUpdate = "UPDATE"
	AcaoDelete = "DELETE"
)

// AuditLog é um registro imutável de uma ação mutadora: nunca é atualizado
// nem removido. UserID pode ficar órfão se o usuário for excluído depois; a
// trilha tolera a referência pendente.
type AuditLog struct {
	ID         string
	UserID     string
	Acao       string // CREATE | UPDATE | DELETE
	Entidade   string // Company | Product
	EntidadeID string
	Detalhes   string // snapshot JSON da entrada ou do registro removido
	CriadoEm   time.Time

	// Preenchidos via join na listagem; vazios quando o usuário já não existe.
	UserEmail string
	UserNome  string
}
