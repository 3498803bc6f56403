package dto

// ListResponse envoltura de listados para la consola: {success, data, total}.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

// NewList construye la envoltura; nunca serializa data como null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Success: true, Data: items, Total: len(items)}
}

// ErrorResponse cuerpo de error HTTP. Refresh sugiere a la consola recargar la lista
// (referencia obsoleta a un recurso ya eliminado).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Refresh bool   `json:"refresh,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
