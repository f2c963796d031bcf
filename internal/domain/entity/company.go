package entity

import "time"

// Company representa uma empresa (tenant). Produtos pertencem a exatamente
// uma empresa.
type Company struct {
	ID           string
	Nome         string
	CNPJ         string // 14 dígitos, único
	Endereco     string
	Telefone     string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
