package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest alta de ingrediente.
type CreateIngredientRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	Unit             string          `json:"unit" validate:"required,max=20"`
	Quantity         int             `json:"quantity" validate:"min=0,max=2147483647"`
	MinStock         int             `json:"minStock" validate:"min=0"`
	Location         string          `json:"location" validate:"omitempty,max=100"`
	StorageCondition string          `json:"storageCondition" validate:"omitempty,max=100"`
	UnitCost         decimal.Decimal `json:"unitCost"`
}

// UpdateIngredientRequest cambios de ingrediente; la cantidad solo cambia con movimientos.
type UpdateIngredientRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit             *string          `json:"unit" validate:"omitempty,max=20"`
	MinStock         *int             `json:"minStock" validate:"omitempty,min=0"`
	Location         *string          `json:"location" validate:"omitempty,max=100"`
	StorageCondition *string          `json:"storageCondition" validate:"omitempty,max=100"`
	UnitCost         *decimal.Decimal `json:"unitCost"`
}

// IngredientResponse salida de ingrediente.
type IngredientResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	Unit             string          `json:"unit"`
	Quantity         int             `json:"quantity"`
	MinStock         int             `json:"minStock"`
	Location         string          `json:"location"`
	StorageCondition string          `json:"storageCondition"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	Status           string          `json:"status"`
	IsLow            bool            `json:"isLow"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// StockAdjustRequest entrada/salida de stock. Quantity debe ser > 0. UnitCost opcional
// en entradas: recalcula el costo promedio ponderado.
type StockAdjustRequest struct {
	Quantity  int              `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unitCost"`
	Reference string           `json:"reference" validate:"omitempty,max=200"`
}

// SetStockRequest conteo directo del stock de un producto.
type SetStockRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=2147483647"`
}

// LowStockItem fila de la pestaña de stock bajo con la reposición sugerida.
type LowStockItem struct {
	Kind          string          `json:"kind"` // ingredient, product
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"minStock"`
	Status        string          `json:"status"`
	SuggestedQty  int             `json:"suggestedQty"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Priority      int             `json:"priority"`
}

// LocationSummary ubicación de almacenamiento y los ítems que guarda.
type LocationSummary struct {
	Location  string `json:"location"`
	ItemCount int    `json:"itemCount"`
	LowCount  int    `json:"lowCount"`
}

// StockMovementResponse movimiento registrado.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ItemKind  string    `json:"itemKind"`
	ItemID    string    `json:"itemId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Before    int       `json:"before"`
	After     int       `json:"after"`
	Reference string    `json:"reference"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
