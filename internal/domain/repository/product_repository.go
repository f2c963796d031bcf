package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
