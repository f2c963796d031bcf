package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/empresas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/empresas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmpresaID = "00000000-0000-0000-0000-000000000002"
)

var testJWTCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "empresas-api-test",
}

// buildCargoApp monta uma aplicação Fiber mínima com AuthMiddleware +
// RequireCargo e um handler que devolve 200 quando a cadeia passa.
func buildCargoApp(cargos ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTCfg),
		apphttp.RequireCargo(cargos...),
		func(c *fiber.Ctx) error {
			id := apphttp.GetIdentity(c)
			return c.JSON(fiber.Map{"ok": true, "role": id.Role})
		},
	)
	return app
}

// buildVinculoApp monta a rota de produtos da empresa protegida por
// AuthMiddleware + RequireVinculo.
func buildVinculoApp() *fiber.App {
	app := fiber.New()
	app.Get("/company/:id/products",
		apphttp.AuthMiddleware(testJWTCfg),
		apphttp.RequireVinculo("id"),
		func(c *fiber.Ctx) error {
			return c.JSON([]string{})
		},
	)
	return app
}

// tokenFor gera um JWT com a role global e os vínculos informados.
func tokenFor(t *testing.T, role string, empresas ...pkgjwt.EmpresaClaim) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTCfg, testUserID, "user@test.com", "Usuário Teste", role, empresas)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara um GET e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCargo
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireCargo_AdminGlobalSemVinculos_Passa(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	resp := doRequest(t, app, "/protected", tokenFor(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN global deve passar mesmo sem vínculo algum")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireCargo_CargoAdminEmVinculo_Passa(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	tok := tokenFor(t, entity.RoleUser,
		pkgjwt.EmpresaClaim{EmpresaID: testEmpresaID, Cargo: entity.CargoAdmin})
	resp := doRequest(t, app, "/protected", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"cargo ADMIN em qualquer vínculo deve bastar")
}

func TestRequireCargo_SomenteCargoUser_Retorna403(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	tok := tokenFor(t, entity.RoleUser,
		pkgjwt.EmpresaClaim{EmpresaID: testEmpresaID, Cargo: entity.CargoUser})
	resp := doRequest(t, app, "/protected", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Acesso negado: permissão insuficiente.",
		"o envelope deve trazer a mensagem de permissão insuficiente")
}

func TestRequireCargo_TokenSemRole_Retorna403(t *testing.T) {
	// Claim malformado ou legado: sem role global e sem vínculos.
	app := buildCargoApp(entity.CargoAdmin)
	resp := doRequest(t, app, "/protected", tokenFor(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"token sem role alguma nega como qualquer identidade sem cargo")
}

func TestRequireCargo_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireCargo_TokenInvalido_Retorna401(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	resp := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireCargo_SchemeErrado_Retorna401(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)
	resp := doRequest(t, app, "/protected", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// O corpo do 401 por header ausente e por token inválido deve ser idêntico
// fora o timestamp: nenhuma pista sobre qual verificação falhou.
func TestAuthMiddleware_Falhas401_MesmaMensagem(t *testing.T) {
	app := buildCargoApp(entity.CargoAdmin)

	resp1 := doRequest(t, app, "/protected", "")
	defer resp1.Body.Close()
	resp2 := doRequest(t, app, "/protected", "Bearer token.invalido.aqui")
	defer resp2.Body.Close()

	var b1, b2 map[string]interface{}
	require.NoError(t, json.NewDecoder(resp1.Body).Decode(&b1))
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&b2))
	assert.Equal(t, b1["message"], b2["message"])
	assert.Equal(t, b1["error"], b2["error"])
	assert.Equal(t, float64(http.StatusUnauthorized), b1["statusCode"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireVinculo
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireVinculo_MembroDaEmpresa_Passa(t *testing.T) {
	app := buildVinculoApp()
	tok := tokenFor(t, entity.RoleUser,
		pkgjwt.EmpresaClaim{EmpresaID: testEmpresaID, Cargo: entity.CargoUser})
	resp := doRequest(t, app, "/company/"+testEmpresaID+"/products", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"vínculo com a empresa basta, mesmo com cargo USER")
}

func TestRequireVinculo_AdminGlobal_Passa(t *testing.T) {
	app := buildVinculoApp()
	resp := doRequest(t, app, "/company/"+testEmpresaID+"/products", tokenFor(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireVinculo_SemVinculoComAlvo_Retorna403(t *testing.T) {
	// Ser ADMIN da empresa A não dá acesso aos produtos da empresa B.
	app := buildVinculoApp()
	tok := tokenFor(t, entity.RoleUser,
		pkgjwt.EmpresaClaim{EmpresaID: "outra-empresa", Cargo: entity.CargoAdmin})
	resp := doRequest(t, app, "/company/"+testEmpresaID+"/products", tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Acesso negado: você não está vinculado a esta empresa.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — reconstrução da identidade
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ReconstroiIdentidade(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTCfg), func(c *fiber.Ctx) error {
		id := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{
			"user_id":  id.UserID,
			"email":    id.Email,
			"role":     id.Role,
			"empresas": len(id.Empresas),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, entity.RoleUser,
		pkgjwt.EmpresaClaim{EmpresaID: testEmpresaID, Cargo: entity.CargoUser, EmpresaNome: "Empresa X"}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "user@test.com", body["email"])
	assert.Equal(t, entity.RoleUser, body["role"])
	assert.Equal(t, float64(1), body["empresas"])
}

func TestGetIdentity_SemMiddleware_RetornaNil(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		if apphttp.GetIdentity(c) == nil {
			return c.SendStatus(http.StatusNoContent)
		}
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
