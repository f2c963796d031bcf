package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/authz"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ─────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	for _, existing := range r.companies {
		if existing.CNPJ == c.CNPJ {
			return domain.ErrUniqueViolation
		}
	}
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.EmpresaID == empresaID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

type fakeAuditRepo struct {
	entries  []*entity.AuditLog
	failNext bool
}

func (r *fakeAuditRepo) Create(_ context.Context, e *entity.AuditLog) error {
	if r.failNext {
		r.failNext = false
		return errors.New("insert audit: falha simulada")
	}
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, f repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for _, e := range r.entries {
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		if f.Acao != "" && e.Acao != f.Acao {
			continue
		}
		if f.Entidade != "" && e.Entidade != f.Entidade {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func newCompanyUseCase() (*usecase.CompanyUseCase, *fakeCompanyRepo, *fakeAuditRepo) {
	companies := newFakeCompanyRepo()
	audit := &fakeAuditRepo{}
	return usecase.NewCompanyUseCase(companies, newFakeProductRepo(), audit), companies, audit
}

func adminIdentity() *authz.Identity {
	return &authz.Identity{UserID: "admin-1", Email: "admin@admin.com", Role: entity.RoleAdmin}
}

func criarEmpresa(t *testing.T, uc *usecase.CompanyUseCase, identidade *authz.Identity) *dto.CompanyResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), identidade, dto.CreateCompanyRequest{
		Nome:     "Empresa Alpha",
		CNPJ:     "12345678000199",
		Endereco: "Rua das Flores, 123",
		Telefone: "(11)91234-5678",
	})
	require.NoError(t, err)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Auditoria em mutações
// ─────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_RegistraAuditoriaComIdentidade(t *testing.T) {
	uc, _, audit := newCompanyUseCase()
	out := criarEmpresa(t, uc, adminIdentity())

	require.Len(t, audit.entries, 1)
	e := audit.entries[0]
	assert.Equal(t, "admin-1", e.UserID)
	assert.Equal(t, entity.AcaoCreate, e.Acao)
	assert.Equal(t, "Company", e.Entidade)
	assert.Equal(t, out.ID, e.EntidadeID)

	var detalhes map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Detalhes), &detalhes))
	assert.Equal(t, "Empresa Alpha", detalhes["nome"], "detalhes guardam o snapshot da entrada")
}

func TestCompanyCreate_SemIdentidade_NaoAudita(t *testing.T) {
	uc, _, audit := newCompanyUseCase()
	criarEmpresa(t, uc, nil)
	assert.Empty(t, audit.entries, "escritas do sistema, sem identidade, não são auditadas")
}

func TestCompanyCreate_FalhaDeAuditoriaNaoDesfazMutacao(t *testing.T) {
	uc, companies, audit := newCompanyUseCase()
	audit.failNext = true

	out := criarEmpresa(t, uc, adminIdentity())
	assert.NotNil(t, companies.companies[out.ID],
		"a auditoria é best-effort: a empresa fica criada mesmo se o registro falhar")
}

func TestCompanyUpdate_ParcialEAuditado(t *testing.T) {
	uc, _, audit := newCompanyUseCase()
	criada := criarEmpresa(t, uc, adminIdentity())

	novoNome := "Empresa Alpha Renomeada"
	out, err := uc.Update(context.Background(), adminIdentity(), criada.ID, dto.UpdateCompanyRequest{Nome: &novoNome})
	require.NoError(t, err)

	assert.Equal(t, novoNome, out.Nome)
	assert.Equal(t, criada.CNPJ, out.CNPJ, "campos ausentes no PATCH ficam intactos")

	require.Len(t, audit.entries, 2)
	assert.Equal(t, entity.AcaoUpdate, audit.entries[1].Acao)
}

func TestCompanyUpdate_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newCompanyUseCase()
	_, err := uc.Update(context.Background(), adminIdentity(), "nao-existe", dto.UpdateCompanyRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyDelete_DevolveRemovidoEAuditaSnapshot(t *testing.T) {
	uc, companies, audit := newCompanyUseCase()
	criada := criarEmpresa(t, uc, adminIdentity())

	out, err := uc.Delete(context.Background(), adminIdentity(), criada.ID)
	require.NoError(t, err)

	assert.Equal(t, criada.ID, out.ID, "o DELETE devolve o registro removido")
	assert.Empty(t, companies.companies)

	require.Len(t, audit.entries, 2)
	e := audit.entries[1]
	assert.Equal(t, entity.AcaoDelete, e.Acao)

	var detalhes map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Detalhes), &detalhes))
	assert.Equal(t, criada.CNPJ, detalhes["cnpj"], "detalhes guardam o snapshot do registro removido")
}

func TestCompanyDelete_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newCompanyUseCase()
	_, err := uc.Delete(context.Background(), adminIdentity(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyCreate_CNPJDuplicado(t *testing.T) {
	uc, _, _ := newCompanyUseCase()
	criarEmpresa(t, uc, adminIdentity())

	_, err := uc.Create(context.Background(), adminIdentity(), dto.CreateCompanyRequest{
		Nome: "Outra Empresa",
		CNPJ: "12345678000199",
	})
	assert.ErrorIs(t, err, domain.ErrUniqueViolation)
}

// ─────────────────────────────────────────────────────────────────────────────
// Listagem de auditoria
// ─────────────────────────────────────────────────────────────────────────────

func TestAuditList_Filtros(t *testing.T) {
	audit := &fakeAuditRepo{entries: []*entity.AuditLog{
		{ID: "1", UserID: "u1", Acao: entity.AcaoCreate, Entidade: "Company", CriadoEm: time.Now()},
		{ID: "2", UserID: "u2", Acao: entity.AcaoDelete, Entidade: "Product", CriadoEm: time.Now()},
	}}
	uc := usecase.NewAuditUseCase(audit)

	out, err := uc.List(context.Background(), repository.AuditLogFilter{Entidade: "Product"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	out, err = uc.List(context.Background(), repository.AuditLogFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
