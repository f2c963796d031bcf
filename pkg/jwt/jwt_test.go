package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/empresas-api/pkg/jwt"
)

var testCfg = pkgjwt.Config{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "empresas-api-test",
}

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	empresas := []pkgjwt.EmpresaClaim{
		{EmpresaID: "empresa-1", Cargo: "ADMIN", EmpresaNome: "Empresa Alpha"},
		{EmpresaID: "empresa-2", Cargo: "USER", EmpresaNome: "Empresa Beta"},
	}
	tok, err := pkgjwt.Generate(testCfg, "user-1", "user@empresa.com", "Usuário 1", "USER", empresas)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "user@empresa.com", claims.Email)
	assert.Equal(t, "Usuário 1", claims.Nome)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, empresas, claims.Empresas,
		"os vínculos devem voltar exatamente como no momento da emissão")
	assert.Equal(t, testCfg.Issuer, claims.Issuer)
}

func TestGenerate_SemVinculos(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, "admin-1", "admin@admin.com", "Admin Global", "ADMIN", nil)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testCfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Empty(t, claims.Empresas)
}

func TestParse_TokenExpirado_RetornaErro(t *testing.T) {
	cfg := testCfg
	cfg.ExpMinutes = -1 // já expirado na emissão
	tok, err := pkgjwt.Generate(cfg, "user-1", "user@empresa.com", "Usuário 1", "USER", nil)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testCfg, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestParse_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testCfg, "user-1", "user@empresa.com", "Usuário 1", "USER", nil)
	require.NoError(t, err)

	outro := testCfg
	outro.Secret = "outro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(outro, tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}

func TestGenerateParse_SecretVazio_RetornaErro(t *testing.T) {
	_, err := pkgjwt.Generate(pkgjwt.Config{}, "u", "e", "n", "USER", nil)
	assert.Error(t, err)

	_, err = pkgjwt.Parse(pkgjwt.Config{}, "qualquer")
	assert.Error(t, err)
}
