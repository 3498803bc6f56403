package workflow

import (
	"fmt"
	"math"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// MaxQuantity tope de stock por ítem; la columna quantity es INTEGER.
const MaxQuantity = math.MaxInt32

// ApplyStockIn suma q a current. q debe ser > 0 y el resultado no superar MaxQuantity.
func ApplyStockIn(current, q int) (int, error) {
	if q <= 0 {
		return current, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if q > MaxQuantity-current {
		return current, fmt.Errorf("%w: la entrada de %d supera el máximo de %d unidades", domain.ErrInvalidInput, q, MaxQuantity)
	}
	return current + q, nil
}

// ApplyStockOut resta q de current. q debe ser > 0 y no superar current.
func ApplyStockOut(current, q int) (int, error) {
	if q <= 0 {
		return current, fmt.Errorf("%w: la cantidad debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if q > current {
		return current, fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, current, q)
	}
	return current - q, nil
}

// StockIn entrada de ingrediente; si falla la validación el ingrediente no cambia.
func StockIn(ing *entity.Ingredient, q int) error {
	next, err := ApplyStockIn(ing.Quantity, q)
	if err != nil {
		return err
	}
	ing.Quantity = next
	return nil
}

// StockOut salida de ingrediente; todo o nada.
func StockOut(ing *entity.Ingredient, q int) error {
	next, err := ApplyStockOut(ing.Quantity, q)
	if err != nil {
		return err
	}
	ing.Quantity = next
	return nil
}

// IsLow quantity < minStock.
func IsLow(ing *entity.Ingredient) bool {
	return ing.Quantity < ing.MinStock
}

// IngredientStatus in-stock, low-stock u out-of-stock.
func IngredientStatus(ing *entity.Ingredient) string {
	switch {
	case ing.Quantity == 0:
		return entity.StockOutOfStock
	case IsLow(ing):
		return entity.StockLow
	default:
		return entity.StockInStock
	}
}

// ClassifyProduct available, low-stock u out-of-stock para producto terminado.
func ClassifyProduct(quantity, minStock int) string {
	switch {
	case quantity <= 0:
		return entity.StockOutOfStock
	case quantity < minStock:
		return entity.StockLow
	default:
		return entity.StockAvailable
	}
}

// Shortfall cantidad sugerida de reposición para volver al mínimo; 0 si no está bajo.
func Shortfall(ing *entity.Ingredient) int {
	if !IsLow(ing) {
		return 0
	}
	return ing.MinStock - ing.Quantity
}
