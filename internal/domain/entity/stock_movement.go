package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
	MovementTypeSet = "set" // conteo/ajuste directo
)

// Tipos de ítem inventariable.
const (
	ItemKindIngredient = "ingredient"
	ItemKindProduct    = "product"
)

// StockMovement registro de un ajuste de stock ya aplicado.
type StockMovement struct {
	ID        string
	ItemKind  string // ingredient, product
	ItemID    string
	Type      string // in, out, set
	Quantity  int
	Before    int
	After     int
	Reference string
	CreatedAt time.Time
	CreatedBy string // Username
}
