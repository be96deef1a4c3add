package dto

// ErrorResponse error en endpoints que no son mutaciones de inventario
// (auth, catálogos). Las mutaciones usan MutationResponse.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// MutationResponse cuerpo de respuesta de toda mutación de inventario.
// El shape {success, message, error, details, data} es contrato con los
// consumidores de la API y se conserva tal cual.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) MutationResponse {
	return MutationResponse{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error con categoría machine-readable y detalle.
func Fail(category, message, details string) MutationResponse {
	return MutationResponse{Success: false, Error: category, Message: message, Details: details}
}
