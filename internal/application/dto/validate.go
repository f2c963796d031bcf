package dto

import "regexp"

// Regexps de validação de campos (mesmos formatos aceitos pela API original).
var (
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cnpjRegexp     = regexp.MustCompile(`^\d{14}$`)
	telefoneRegexp = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)
)

func isRoleValido(role string) bool {
	return role == "ADMIN" || role == "USER"
}
