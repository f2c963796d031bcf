package dto

import "time"

// CreateCompanyRequest entrada para criar empresa.
type CreateCompanyRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

// Validate agrega os erros de campo.
func (r CreateCompanyRequest) Validate() []string {
	var errs []string
	if r.Nome == "" {
		errs = append(errs, "O nome é obrigatório.")
	}
	if r.CNPJ == "" {
		errs = append(errs, "O CNPJ é obrigatório.")
	} else if !cnpjRegexp.MatchString(r.CNPJ) {
		errs = append(errs, "CNPJ deve conter 14 dígitos numéricos.")
	}
	if r.Telefone != "" && !telefoneRegexp.MatchString(r.Telefone) {
		errs = append(errs, "Telefone em formato inválido.")
	}
	return errs
}

// UpdateCompanyRequest entrada parcial para atualizar empresa (PATCH).
// Ponteiros distinguem campo ausente de campo vazio.
type UpdateCompanyRequest struct {
	Nome     *string `json:"nome,omitempty"`
	CNPJ     *string `json:"cnpj,omitempty"`
	Endereco *string `json:"endereco,omitempty"`
	Telefone *string `json:"telefone,omitempty"`
}

// Validate valida apenas os campos presentes.
func (r UpdateCompanyRequest) Validate() []string {
	var errs []string
	if r.Nome != nil && *r.Nome == "" {
		errs = append(errs, "O nome é obrigatório.")
	}
	if r.CNPJ != nil && !cnpjRegexp.MatchString(*r.CNPJ) {
		errs = append(errs, "CNPJ deve conter 14 dígitos numéricos.")
	}
	if r.Telefone != nil && *r.Telefone != "" && !telefoneRegexp.MatchString(*r.Telefone) {
		errs = append(errs, "Telefone em formato inválido.")
	}
	return errs
}

// CompanyResponse saída de uma empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	CNPJ         string    `json:"cnpj"`
	Endereco     string    `json:"endereco,omitempty"`
	Telefone     string    `json:"telefone,omitempty"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}
