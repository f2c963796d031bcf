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

const entidadeCompany = "Company"

// CompanyUseCase casos de uso de empresas. Toda mutação feita com identidade
// presente gera um registro na trilha de auditoria.
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	productRepo repository.ProductRepository
	auditRepo   repository.AuditLogRepository
}

// NewCompanyUseCase constrói o caso de uso com as portas de persistência.
func NewCompanyUseCase(repo repository.CompanyRepository, productRepo repository.ProductRepository, auditRepo repository.AuditLogRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, productRepo: productRepo, auditRepo: auditRepo}
}

// Create cria uma empresa. A unicidade do CNPJ é garantida pela constraint do
// banco (sem check-then-insert sujeito a corrida nesta camada).
func (uc *CompanyUseCase) Create(ctx context.Context, identidade *authz.Identity, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		CNPJ:         in.CNPJ,
		Endereco:     in.Endereco,
		Telefone:     in.Telefone,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoCreate, entidadeCompany, company.ID, in)
	return toCompanyResponse(company), nil
}

// GetByID obtém uma empresa; nil quando não existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List devolve todas as empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// Update aplica uma atualização parcial. Devolve domain.ErrNotFound se a
// empresa não existe.
func (uc *CompanyUseCase) Update(ctx context.Context, identidade *authz.Identity, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nome != nil {
		company.Nome = *in.Nome
	}
	if in.CNPJ != nil {
		company.CNPJ = *in.CNPJ
	}
	if in.Endereco != nil {
		company.Endereco = *in.Endereco
	}
	if in.Telefone != nil {
		company.Telefone = *in.Telefone
	}
	company.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoUpdate, entidadeCompany, id, in)
	return toCompanyResponse(company), nil
}

// Delete remove a empresa e devolve o registro removido; o snapshot removido
// vai para a auditoria.
func (uc *CompanyUseCase) Delete(ctx context.Context, identidade *authz.Identity, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	registrarAuditoria(ctx, uc.auditRepo, identidade, entity.AcaoDelete, entidadeCompany, id, out)
	return out, nil
}

// ListProducts lista os produtos da empresa. A checagem de vínculo com a
// empresa acontece na camada HTTP, antes deste método.
func (uc *CompanyUseCase) ListProducts(ctx context.Context, id string) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.ListByEmpresa(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		CNPJ:         c.CNPJ,
		Endereco:     c.Endereco,
		Telefone:     c.Telefone,
		CriadoEm:     c.CriadoEm,
		AtualizadoEm: c.AtualizadoEm,
	}
}
