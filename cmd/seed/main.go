package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/empresas-api/pkg/config"
	"github.com/jhoicas/empresas-api/pkg/logger"
)

// Seed de desenvolvimento: limpa o banco e cria duas empresas, um admin
// global, dois usuários comuns com vínculos, produtos e registros de
// auditoria de exemplo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Limpa o banco (a ordem importa por causa dos relacionamentos).
	for _, table := range []string{"audit_logs", "empresa_usuarios", "products", "users", "companies"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatal().Err(err).Str("table", table).Msg("limpar tabela")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	vinculoRepo := postgres.NewEmpresaUsuarioRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)

	now := time.Now()

	empresa1 := &entity.Company{
		ID:           uuid.New().String(),
		Nome:         "Empresa Alpha",
		CNPJ:         "12345678000199",
		Endereco:     "Rua das Flores, 123",
		Telefone:     "(11)91234-5678",
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	empresa2 := &entity.Company{
		ID:           uuid.New().String(),
		Nome:         "Empresa Beta",
		CNPJ:         "98765432000188",
		Endereco:     "Av. Central, 456",
		Telefone:     "(21)99876-5432",
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	for _, c := range []*entity.Company{empresa1, empresa2} {
		if err := companyRepo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("empresa", c.Nome).Msg("criar empresa")
		}
	}

	admin := seedUser(ctx, log, userRepo, "admin@admin.com", "admin123", "Admin Global", entity.RoleAdmin)
	user1 := seedUser(ctx, log, userRepo, "user1@empresa.com", "user123", "Usuário 1", entity.RoleUser)
	user2 := seedUser(ctx, log, userRepo, "user2@empresa.com", "user456", "Usuário 2", entity.RoleUser)

	vinculos := []*entity.EmpresaUsuario{
		{ID: uuid.New().String(), UserID: user1.ID, EmpresaID: empresa1.ID, Cargo: entity.CargoAdmin, CriadoEm: now},
		{ID: uuid.New().String(), UserID: user1.ID, EmpresaID: empresa2.ID, Cargo: entity.CargoUser, CriadoEm: now},
		{ID: uuid.New().String(), UserID: user2.ID, EmpresaID: empresa2.ID, Cargo: entity.CargoUser, CriadoEm: now},
	}
	for _, v := range vinculos {
		if err := vinculoRepo.Create(ctx, v); err != nil {
			log.Fatal().Err(err).Msg("criar vínculo")
		}
	}

	produto1 := &entity.Product{
		ID:           uuid.New().String(),
		Nome:         "Produto Alpha",
		Descricao:    "Produto de exemplo da Empresa Alpha",
		Preco:        decimal.NewFromInt(100),
		EmpresaID:    empresa1.ID,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	produto2 := &entity.Product{
		ID:           uuid.New().String(),
		Nome:         "Produto Beta",
		Descricao:    "Produto de exemplo da Empresa Beta",
		Preco:        decimal.NewFromInt(200),
		EmpresaID:    empresa2.ID,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	for _, p := range []*entity.Product{produto1, produto2} {
		if err := productRepo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("produto", p.Nome).Msg("criar produto")
		}
	}

	auditorias := []*entity.AuditLog{
		{ID: uuid.New().String(), UserID: admin.ID, Acao: entity.AcaoCreate, Entidade: "Company", EntidadeID: empresa1.ID, Detalhes: "Empresa Alpha criada", CriadoEm: now},
		{ID: uuid.New().String(), UserID: user1.ID, Acao: entity.AcaoCreate, Entidade: "Product", EntidadeID: produto1.ID, Detalhes: "Produto Alpha criado", CriadoEm: now},
		{ID: uuid.New().String(), UserID: user2.ID, Acao: entity.AcaoCreate, Entidade: "Product", EntidadeID: produto2.ID, Detalhes: "Produto Beta criado", CriadoEm: now},
	}
	for _, a := range auditorias {
		if err := auditRepo.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Msg("criar registro de auditoria")
		}
	}

	fmt.Println("Seed concluído com sucesso!")
}

func seedUser(ctx context.Context, log *logger.Logger, repo *postgres.UserRepo, email, password, nome, role string) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de senha")
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nome:         nome,
		Role:         role,
		CriadoEm:     time.Now(),
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Str("email", email).Msg("criar usuário")
	}
	return u
}
