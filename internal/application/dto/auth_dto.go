package dto

import "time"

// SignupRequest entrada de cadastro. Role define o tipo de usuário: ADMIN
// (super usuário, sem vínculo) ou USER (precisa de empresa_id e cargo; é o
// default quando omitido).
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nome      string `json:"nome"`
	Role      string `json:"role,omitempty"`
	EmpresaID string `json:"empresa_id,omitempty"`
	Cargo     string `json:"cargo,omitempty"`
}

// Validate agrega TODOS os erros de campo, não só o primeiro.
func (r SignupRequest) Validate() []string {
	var errs []string
	if !emailRegexp.MatchString(r.Email) {
		errs = append(errs, "email must be an email")
	}
	if len(r.Password) < 6 {
		errs = append(errs, "password must be longer than or equal to 6 characters")
	}
	if r.Nome == "" {
		errs = append(errs, "nome should not be empty")
	}
	if r.Role != "" && !isRoleValido(r.Role) {
		errs = append(errs, "role must be one of the following values: ADMIN, USER")
	}
	if r.Cargo != "" && !isRoleValido(r.Cargo) {
		errs = append(errs, "cargo must be one of the following values: ADMIN, USER")
	}
	return errs
}

// SigninRequest entrada de login.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate agrega os erros de campo.
func (r SigninRequest) Validate() []string {
	var errs []string
	if !emailRegexp.MatchString(r.Email) {
		errs = append(errs, "email must be an email")
	}
	if r.Password == "" {
		errs = append(errs, "password should not be empty")
	}
	return errs
}

// EmpresaVinculoResponse vínculo empresa/cargo na saída.
type EmpresaVinculoResponse struct {
	EmpresaID   string `json:"empresa_id"`
	Cargo       string `json:"cargo"`
	EmpresaNome string `json:"empresa_nome,omitempty"`
}

// UserResponse saída de um usuário (nunca inclui o hash da senha).
type UserResponse struct {
	ID       string                   `json:"id"`
	Email    string                   `json:"email"`
	Nome     string                   `json:"nome"`
	Role     string                   `json:"role"`
	Empresas []EmpresaVinculoResponse `json:"empresas,omitempty"`
	CriadoEm time.Time                `json:"criado_em"`
}

// SigninResponse saída do login: token + visão redigida do usuário.
type SigninResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
