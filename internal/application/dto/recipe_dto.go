package dto

import "github.com/shopspring/decimal"

// RecipeIngredientDTO línea de receta.
type RecipeIngredientDTO struct {
	IngredientID string          `json:"ingredientId" validate:"required"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

// CreateRecipeRequest alta de receta.
type CreateRecipeRequest struct {
	Name         string                `json:"name" validate:"required,min=1,max=200"`
	Category     string                `json:"category" validate:"required,max=100"`
	ProductID    string                `json:"productId"`
	Servings     int                   `json:"servings" validate:"min=0"`
	PrepMinutes  int                   `json:"prepTime" validate:"min=0"`
	Instructions string                `json:"instructions"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients" validate:"dive"`
}

// UpdateRecipeRequest cambios de receta; Ingredients no nil reemplaza la lista completa.
type UpdateRecipeRequest struct {
	Name         *string               `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string               `json:"category" validate:"omitempty,max=100"`
	ProductID    *string               `json:"productId"`
	Servings     *int                  `json:"servings" validate:"omitempty,min=0"`
	PrepMinutes  *int                  `json:"prepTime" validate:"omitempty,min=0"`
	Instructions *string               `json:"instructions"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients" validate:"omitempty,dive"`
}

// RecipeResponse salida de receta.
type RecipeResponse struct {
	ID           string                `json:"id"`
	Code         string                `json:"code"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	ProductID    string                `json:"productId"`
	Servings     int                   `json:"servings"`
	PrepMinutes  int                   `json:"prepTime"`
	Instructions string                `json:"instructions"`
	Ingredients  []RecipeIngredientDTO `json:"ingredients"`
}

// RecipeCostLineDTO costo por ingrediente.
type RecipeCostLineDTO struct {
	IngredientID string          `json:"ingredientId"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	Cost         decimal.Decimal `json:"cost"`
	Missing      bool            `json:"missing,omitempty"`
}

// RecipeCostResponse costo de la receta.
type RecipeCostResponse struct {
	RecipeID   string              `json:"recipeId"`
	Lines      []RecipeCostLineDTO `json:"lines"`
	TotalCost  decimal.Decimal     `json:"totalCost"`
	PerServing decimal.Decimal     `json:"costPerServing"`
}
