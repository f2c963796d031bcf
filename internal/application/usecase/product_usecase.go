package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/authz"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

const entidadeProduct = "Product"

// ProductUseCase casos de uso de produtos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	auditRepo repository.AuditLogRepository
}

// NewProductUseCase constrói o caso de uso com as portas de persistência.
func NewProductUseCase(repo repository.ProductRepository, auditRepo repository.AuditLogRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, auditRepo: auditRepo}
}

// Create cria um produto vinculado a uma empresa. Empresa inexistente é
// detectada pela FK do banco e traduzida em domain.ErrEmpresaInvalida.
func (uc *ProductUseCase) Create(ctx context.Context, identidade *authz.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		EmpresaID:    in.EmpresaID,
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		Preco:        *in.Preco,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoCreate, entidadeProduct, product.ID, in)
	return toProductResponse(product), nil
}

// GetByID obtém um produto; nil quando não existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devolve todos os produtos, de todas as empresas.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update aplica uma atualização parcial.
func (uc *ProductUseCase) Update(ctx context.Context, identidade *authz.Identity, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		product.Nome = *in.Nome
	}
	if in.Descricao != nil {
		product.Descricao = *in.Descricao
	}
	if in.Preco != nil {
		product.Preco = *in.Preco
	}
	if in.EmpresaID != nil {
		product.EmpresaID = *in.EmpresaID
	}
	product.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoUpdate, entidadeProduct, id, in)
	return toProductResponse(product), nil
}

// Delete remove o produto e devolve o registro removido (snapshot auditado).
func (uc *ProductUseCase) Delete(ctx context.Context, identidade *authz.Identity, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoDelete, entidadeProduct, id, out)
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		EmpresaID:    p.EmpresaID,
		CriadoEm:     p.CriadoEm,
		AtualizadoEm: p.AtualizadoEm,
	}
}
