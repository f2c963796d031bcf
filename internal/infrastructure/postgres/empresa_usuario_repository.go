package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ repository.EmpresaUsuarioRepository = (*EmpresaUsuarioRepo)(nil)

// EmpresaUsuarioRepo implementação da porta de vínculos usuário-empresa.
type EmpresaUsuarioRepo struct {
	q Querier
}

// NewEmpresaUsuarioRepository constrói o adaptador de vínculos. Aceita pool ou tx.
func NewEmpresaUsuarioRepository(q Querier) *EmpresaUsuarioRepo {
	return &EmpresaUsuarioRepo{q: q}
}

// Create persiste um vínculo. Empresa inexistente dispara a FK (traduzida em
// domain.ErrEmpresaInvalida); vínculo duplicado para o mesmo par usuário/
// empresa dispara a constraint única.
func (r *EmpresaUsuarioRepo) Create(ctx context.Context, v *entity.EmpresaUsuario) error {
	query := `
		INSERT INTO empresa_usuarios (id, user_id, empresa_id, cargo, criado_em)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, v.ID, v.UserID, v.EmpresaID, v.Cargo, v.CriadoEm)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmpresaInvalida
		}
		if isUniqueViolation(err) {
			return domain.ErrUniqueViolation
		}
		return fmt.Errorf("insert vinculo: %w", err)
	}
	return nil
}

// ListByUser devolve os vínculos do usuário com o nome da empresa via join,
// na ordem de criação (ordem estável para os claims do token).
func (r *EmpresaUsuarioRepo) ListByUser(ctx context.Context, userID string) ([]*entity.EmpresaUsuario, error) {
	query := `
		SELECT v.id, v.user_id, v.empresa_id, v.cargo, v.criado_em, c.nome
		FROM empresa_usuarios v
		JOIN companies c ON c.id = v.empresa_id
		WHERE v.user_id = $1
		ORDER BY v.criado_em`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list vinculos: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmpresaUsuario
	for rows.Next() {
		var v entity.EmpresaUsuario
		if err := rows.Scan(&v.ID, &v.UserID, &v.EmpresaID, &v.Cargo, &v.CriadoEm, &v.EmpresaNome); err != nil {
			return nil, fmt.Errorf("scan vinculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
