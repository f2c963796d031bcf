package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar produto. Preco é ponteiro para
// distinguir "ausente" de zero (zero é um preço válido).
type CreateProductRequest struct {
	Nome      string           `json:"nome"`
	Descricao string           `json:"descricao,omitempty"`
	Preco     *decimal.Decimal `json:"preco"`
	EmpresaID string           `json:"empresa_id"`
}

// Validate agrega os erros de campo.
func (r CreateProductRequest) Validate() []string {
	var errs []string
	if r.Nome == "" {
		errs = append(errs, "O nome é obrigatório.")
	}
	if r.Preco == nil {
		errs = append(errs, "O preço é obrigatório.")
	} else if r.Preco.IsNegative() {
		errs = append(errs, "O preço deve ser maior ou igual a zero.")
	}
	if r.EmpresaID == "" {
		errs = append(errs, "O ID da empresa é obrigatório.")
	}
	return errs
}

// UpdateProductRequest entrada parcial para atualizar produto (PATCH).
type UpdateProductRequest struct {
	Nome      *string          `json:"nome,omitempty"`
	Descricao *string          `json:"descricao,omitempty"`
	Preco     *decimal.Decimal `json:"preco,omitempty"`
	EmpresaID *string          `json:"empresa_id,omitempty"`
}

// Validate valida apenas os campos presentes.
func (r UpdateProductRequest) Validate() []string {
	var errs []string
	if r.Nome != nil && *r.Nome == "" {
		errs = append(errs, "O nome é obrigatório.")
	}
	if r.Preco != nil && r.Preco.IsNegative() {
		errs = append(errs, "O preço deve ser maior ou igual a zero.")
	}
	return errs
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    string          `json:"descricao,omitempty"`
	Preco        decimal.Decimal `json:"preco"`
	EmpresaID    string          `json:"empresa_id"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}
