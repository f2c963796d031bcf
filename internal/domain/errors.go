package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada HTTP traduz cada um
// para o envelope de erro uniforme da API.
var (
	ErrNotFound           = errors.New("registro não encontrado")
	ErrEmailAlreadyExists = errors.New("e-mail já cadastrado")
	ErrUniqueViolation    = errors.New("valor único já cadastrado")
	ErrVinculoObrigatorio = errors.New("usuário comum deve informar empresa e cargo")
	ErrEmpresaInvalida    = errors.New("empresa informada não existe")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
)
