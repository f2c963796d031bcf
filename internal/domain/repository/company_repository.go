package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// CompanyRepository define a porta de persistência para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}
