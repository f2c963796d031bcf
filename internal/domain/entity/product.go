package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto vinculado a uma empresa. Não tem regra de
// acesso própria além do escopo da empresa dona.
type Product struct {
	ID           string
	EmpresaID    string
	Nome         string
	Descricao    string
	Preco        decimal.Decimal // >= 0
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
