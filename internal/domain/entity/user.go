package entity

import "time"

// Roles globais do User. Namespace distinto do cargo por empresa: um USER
// global pode ser ADMIN dentro de uma empresa.
const (
	RoleAdmin = "ADMIN" // super usuário, ignora checagens de vínculo
	RoleUser  = "USER"
)

// Cargos de um usuário dentro de uma empresa.
const (
	CargoAdmin = "ADMIN"
	CargoUser  = "USER"
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt, nunca em texto plano após persistir
	Nome         string
	Role         string // ADMIN | USER
	CriadoEm     time.Time
}

// EmpresaUsuario vincula um User a uma Company com um cargo. Um usuário tem
// no máximo um cargo por empresa, mas pode ter vínculos com várias empresas,
// cada um com cargo independente.
type EmpresaUsuario struct {
	ID        string
	UserID    string
	EmpresaID string
	Cargo     string // ADMIN | USER
	CriadoEm  time.Time

	// EmpresaNome é preenchido via join quando o vínculo é carregado para
	// montar claims; não é coluna da tabela de vínculos.
	EmpresaNome string
}
