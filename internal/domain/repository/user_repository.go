package repository

import (
	"context"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// UserRepository define a porta de persistência para User (DIP).
// A implementação vive em infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// EmpresaUsuarioRepository define a porta para vínculos usuário-empresa.
type EmpresaUsuarioRepository interface {
	Create(ctx context.Context, vinculo *entity.EmpresaUsuario) error
	// ListByUser devolve os vínculos do usuário com EmpresaNome preenchido
	// via join (usado na montagem dos claims no signin).
	ListByUser(ctx context.Context, userID string) ([]*entity.EmpresaUsuario, error)
}
