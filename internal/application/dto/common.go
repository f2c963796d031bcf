package dto

// ErrorResponse envelope uniforme de erro da API. Message é uma string ou uma
// lista de strings (erros de validação agregados).
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}
