package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
)

// LowStock lista de reposición: ingredientes bajo el mínimo y productos en low-stock u
// out-of-stock, con la cantidad sugerida para volver al mínimo y su costo estimado.
// Orden: primero agotados, luego mayor déficit relativo, luego mayor déficit absoluto.
func (uc *StockUseCase) LowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	ingredients, err := uc.repos.Ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}

	items := make([]dto.LowStockItem, 0)
	for _, ing := range ingredients {
		if !workflow.IsLow(ing) {
			continue
		}
		suggested := workflow.Shortfall(ing)
		items = append(items, dto.LowStockItem{
			Kind:          entity.ItemKindIngredient,
			ID:            ing.ID,
			Code:          ing.Code,
			Name:          ing.Name,
			Unit:          ing.Unit,
			Quantity:      ing.Quantity,
			MinStock:      ing.MinStock,
			Status:        workflow.IngredientStatus(ing),
			SuggestedQty:  suggested,
			EstimatedCost: ing.UnitCost.Mul(decimal.NewFromInt(int64(suggested))),
		})
	}
	for _, p := range products {
		status := workflow.ClassifyProduct(p.Quantity, p.MinStock)
		if status == entity.StockAvailable || p.Status == entity.ProductStatusInactive {
			continue
		}
		suggested := p.MinStock - p.Quantity
		if suggested < 0 {
			suggested = 0
		}
		items = append(items, dto.LowStockItem{
			Kind:          entity.ItemKindProduct,
			ID:            p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Unit:          p.Unit,
			Quantity:      p.Quantity,
			MinStock:      p.MinStock,
			Status:        status,
			SuggestedQty:  suggested,
			EstimatedCost: decimal.Zero,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		aOut, bOut := a.Status == entity.StockOutOfStock, b.Status == entity.StockOutOfStock
		if aOut != bOut {
			return aOut
		}
		ra, rb := deficitRatio(a), deficitRatio(b)
		if !ra.Equal(rb) {
			return ra.GreaterThan(rb)
		}
		return a.SuggestedQty > b.SuggestedQty
	})

	// Prioridad 1 = más urgente
	for i := range items {
		items[i].Priority = i + 1
	}
	return items, nil
}

// Locations ubicaciones de almacenamiento con la cantidad de ítems y cuántos están bajos.
func (uc *StockUseCase) Locations(ctx context.Context) ([]dto.LocationSummary, error) {
	ingredients, err := uc.repos.Ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	byLoc := make(map[string]*dto.LocationSummary)
	add := func(loc string, low bool) {
		if loc == "" {
			return
		}
		s, ok := byLoc[loc]
		if !ok {
			s = &dto.LocationSummary{Location: loc}
			byLoc[loc] = s
		}
		s.ItemCount++
		if low {
			s.LowCount++
		}
	}
	for _, ing := range ingredients {
		add(ing.Location, workflow.IsLow(ing))
	}
	for _, p := range products {
		add(p.Location, workflow.ClassifyProduct(p.Quantity, p.MinStock) != entity.StockAvailable)
	}
	out := make([]dto.LocationSummary, 0, len(byLoc))
	for _, s := range byLoc {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out, nil
}

func deficitRatio(it dto.LowStockItem) decimal.Decimal {
	if it.MinStock <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(it.MinStock - it.Quantity)).Div(decimal.NewFromInt(int64(it.MinStock)))
}
