package dto

import "time"

// CreateProductTypeRequest alta de tipo de producto.
type CreateProductTypeRequest struct {
	TypeName         string `json:"typeName" validate:"required,min=1,max=100"`
	Description      string `json:"description" validate:"omitempty,max=500"`
	StorageCondition string `json:"storageCondition" validate:"omitempty,max=100"`
}

// UpdateProductTypeRequest cambios de tipo de producto.
type UpdateProductTypeRequest struct {
	TypeName         *string `json:"typeName" validate:"omitempty,min=1,max=100"`
	Description      *string `json:"description" validate:"omitempty,max=500"`
	StorageCondition *string `json:"storageCondition" validate:"omitempty,max=100"`
}

// ProductTypeResponse salida de tipo de producto.
type ProductTypeResponse struct {
	ProductTypeID    string `json:"productTypeId"`
	TypeName         string `json:"typeName"`
	Description      string `json:"description"`
	StorageCondition string `json:"storageCondition"`
}

// CreateProductRequest alta de producto. MinStock nil usa el umbral configurado.
type CreateProductRequest struct {
	ProductTypeID string `json:"productTypeId"`
	ProductName   string `json:"productName" validate:"required,min=1,max=200"`
	Unit          string `json:"unit" validate:"required,max=20"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
	Quantity      int    `json:"quantity" validate:"min=0"`
	MinStock      *int   `json:"minStock" validate:"omitempty,min=0"`
	Location      string `json:"location" validate:"omitempty,max=100"`
}

// UpdateProductRequest cambios de producto (stock se ajusta por inventario).
type UpdateProductRequest struct {
	ProductTypeID *string `json:"productTypeId"`
	ProductName   *string `json:"productName" validate:"omitempty,min=1,max=200"`
	Unit          *string `json:"unit" validate:"omitempty,max=20"`
	MinStock      *int    `json:"minStock" validate:"omitempty,min=0"`
	Location      *string `json:"location" validate:"omitempty,max=100"`
}

// UpdateStatusRequest cambio de estado active/inactive.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// ProductResponse salida de producto con su clasificación de stock.
type ProductResponse struct {
	ProductID     string    `json:"productId"`
	Code          string    `json:"code"`
	ProductTypeID string    `json:"productTypeId"`
	ProductName   string    `json:"productName"`
	Unit          string    `json:"unit"`
	Status        string    `json:"status"`
	Quantity      int       `json:"quantity"`
	MinStock      int       `json:"minStock"`
	Location      string    `json:"location"`
	StockStatus   string    `json:"stockStatus"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
