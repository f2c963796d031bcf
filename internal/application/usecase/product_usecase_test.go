package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/application/usecase"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

func newProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeAuditRepo) {
	products := newFakeProductRepo()
	audit := &fakeAuditRepo{}
	return usecase.NewProductUseCase(products, audit), products, audit
}

func criarProduto(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	preco := decimal.NewFromFloat(100.00)
	out, err := uc.Create(context.Background(), adminIdentity(), dto.CreateProductRequest{
		Nome:      "Produto Alpha",
		Descricao: "Produto de exemplo",
		Preco:     &preco,
		EmpresaID: "empresa-1",
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate_RegistraAuditoria(t *testing.T) {
	uc, _, audit := newProductUseCase()
	out := criarProduto(t, uc)

	assert.True(t, out.Preco.Equal(decimal.NewFromInt(100)))

	require.Len(t, audit.entries, 1)
	e := audit.entries[0]
	assert.Equal(t, entity.AcaoCreate, e.Acao)
	assert.Equal(t, "Product", e.Entidade)
	assert.Equal(t, out.ID, e.EntidadeID)

	var detalhes map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.Detalhes), &detalhes))
	assert.Equal(t, "empresa-1", detalhes["empresa_id"])
}

func TestProductUpdate_PrecoZeroEValido(t *testing.T) {
	uc, _, _ := newProductUseCase()
	criado := criarProduto(t, uc)

	zero := decimal.Zero
	out, err := uc.Update(context.Background(), adminIdentity(), criado.ID, dto.UpdateProductRequest{Preco: &zero})
	require.NoError(t, err)

	assert.True(t, out.Preco.IsZero(), "preço zero é permitido; só negativo é rejeitado")
	assert.Equal(t, criado.Nome, out.Nome, "campos ausentes no PATCH ficam intactos")
}

func TestProductUpdate_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newProductUseCase()
	_, err := uc.Update(context.Background(), adminIdentity(), "nao-existe", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_DevolveRemovidoEAudita(t *testing.T) {
	uc, products, audit := newProductUseCase()
	criado := criarProduto(t, uc)

	out, err := uc.Delete(context.Background(), adminIdentity(), criado.ID)
	require.NoError(t, err)

	assert.Equal(t, criado.ID, out.ID)
	assert.Empty(t, products.products)
	require.Len(t, audit.entries, 2)
	assert.Equal(t, entity.AcaoDelete, audit.entries[1].Acao)
}

func TestProductGetByID_Inexistente_DevolveNil(t *testing.T) {
	uc, _, _ := newProductUseCase()
	out, err := uc.GetByID(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "o usecase devolve nil e o 404 é decidido na camada HTTP")
}
