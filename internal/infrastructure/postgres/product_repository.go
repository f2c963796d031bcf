package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação da porta ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto. Empresa inexistente dispara a FK.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, empresa_id, nome, descricao, preco, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.EmpresaID, product.Nome, product.Descricao, product.Preco,
		product.CriadoEm, product.AtualizadoEm,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmpresaInvalida
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID; nil se não existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, empresa_id, nome, descricao, preco, criado_em, atualizado_em
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmpresaID, &p.Nome, &p.Descricao, &p.Preco, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List devolve todos os produtos, mais recentes primeiro.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, empresa_id, nome, descricao, preco, criado_em, atualizado_em
		FROM products ORDER BY criado_em DESC`
	return r.queryList(ctx, query)
}

// ListByEmpresa devolve os produtos de uma empresa.
func (r *ProductRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Product, error) {
	query := `
		SELECT id, empresa_id, nome, descricao, preco, criado_em, atualizado_em
		FROM products WHERE empresa_id = $1 ORDER BY criado_em DESC`
	return r.queryList(ctx, query, empresaID)
}

func (r *ProductRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nome, &p.Descricao, &p.Preco, &p.CriadoEm, &p.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto; domain.ErrNotFound se o ID não existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET empresa_id = $2, nome = $3, descricao = $4, preco = $5, atualizado_em = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.EmpresaID, product.Nome, product.Descricao, product.Preco,
		product.AtualizadoEm,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmpresaInvalida
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um produto; domain.ErrNotFound se o ID não existe.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
