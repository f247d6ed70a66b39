package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details datos adicionales del error (ej. faltantes de stock).
	Details any `json:"details,omitempty"`
}
