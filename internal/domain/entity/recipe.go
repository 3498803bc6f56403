package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe fórmula de producción de un producto.
type Recipe struct {
	ID           string
	Code         string // RCP-001
	Name         string
	Category     string
	ProductID    string
	Servings     int
	PrepMinutes  int
	Instructions string
	Ingredients  []RecipeIngredient
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecipeIngredient cantidad de un ingrediente que consume la receta.
type RecipeIngredient struct {
	IngredientID string
	Name         string
	Quantity     decimal.Decimal
	Unit         string
}
