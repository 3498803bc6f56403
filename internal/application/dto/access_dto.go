package dto

import "github.com/jhoicas/CentralKitchen-api/internal/domain/entity"

// AccessResponse páginas y funciones del rol que actúa.
type AccessResponse struct {
	Role      string                      `json:"role"`
	Pages     []entity.PageID             `json:"pages"`
	Functions []entity.FunctionDescriptor `json:"functions"`
}

// PageAccessResponse respuesta de una consulta puntual de página.
type PageAccessResponse struct {
	Page    string `json:"page"`
	Allowed bool   `json:"allowed"`
}

// RoleSummary fila de la pestaña de roles.
type RoleSummary struct {
	Role          string          `json:"role"`
	Pages         []entity.PageID `json:"pages"`
	FunctionCount int             `json:"functionCount"`
}
