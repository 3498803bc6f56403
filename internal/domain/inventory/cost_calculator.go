package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// WeightedAverageCost costo unitario promedio ponderado tras una entrada con costo conocido.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// RecipeCostLine costo de un ingrediente dentro de la receta.
type RecipeCostLine struct {
	IngredientID string
	Name         string
	Quantity     decimal.Decimal
	UnitCost     decimal.Decimal
	Cost         decimal.Decimal
	Missing      bool // ingrediente no encontrado: costo 0
}

// RecipeCost resultado del costeo.
type RecipeCost struct {
	Lines      []RecipeCostLine
	Total      decimal.Decimal
	PerServing decimal.Decimal
}

// CalculateRecipeCost Σ cantidad × costo unitario. costs indexa costo unitario por ingredient id.
// Con servings <= 0 el costo por porción es el total.
func CalculateRecipeCost(r *entity.Recipe, costs map[string]decimal.Decimal) RecipeCost {
	out := RecipeCost{Total: decimal.Zero}
	for _, ri := range r.Ingredients {
		unit, ok := costs[ri.IngredientID]
		line := RecipeCostLine{
			IngredientID: ri.IngredientID,
			Name:         ri.Name,
			Quantity:     ri.Quantity,
			UnitCost:     unit,
			Missing:      !ok,
		}
		line.Cost = ri.Quantity.Mul(unit)
		out.Total = out.Total.Add(line.Cost)
		out.Lines = append(out.Lines, line)
	}
	out.PerServing = out.Total
	if r.Servings > 0 {
		out.PerServing = out.Total.Div(decimal.NewFromInt(int64(r.Servings))).Round(2)
	}
	return out
}
