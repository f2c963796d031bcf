package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-api/internal/application/auth"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/pkg/jwt"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	ProductUC *usecase.ProductUseCase
	AuditUC   *usecase.AuditUseCase
	JWT       jwt.Config
}

// Router registra as rotas da API. Leituras de empresa e de produto por ID são
// públicas; mutações e listagens administrativas exigem Bearer Token + cargo
// ADMIN; a listagem de produtos de uma empresa exige vínculo com ela.
func Router(app *fiber.App, deps RouterDeps) {
	autenticado := AuthMiddleware(deps.JWT)
	somenteAdmin := RequireCargo(entity.CargoAdmin)

	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	// Empresas
	company := app.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Post("/", autenticado, somenteAdmin, companyHandler.Create)
	company.Get("/", companyHandler.List)
	company.Get("/:id/products", autenticado, RequireVinculo("id"), companyHandler.ListProducts)
	company.Get("/:id", companyHandler.GetByID)
	company.Patch("/:id", autenticado, somenteAdmin, companyHandler.Update)
	company.Delete("/:id", autenticado, somenteAdmin, companyHandler.Delete)

	// Produtos
	product := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	product.Post("/", autenticado, somenteAdmin, productHandler.Create)
	product.Get("/", autenticado, somenteAdmin, productHandler.List)
	product.Get("/:id", productHandler.GetByID)
	product.Patch("/:id", autenticado, somenteAdmin, productHandler.Update)
	product.Delete("/:id", autenticado, somenteAdmin, productHandler.Delete)

	// Auditoria (somente ADMIN)
	auditHandler := NewAuditHandler(deps.AuditUC)
	app.Get("/audit-log", autenticado, somenteAdmin, auditHandler.List)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
