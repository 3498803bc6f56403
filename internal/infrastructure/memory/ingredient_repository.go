package memory

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.IngredientRepository    = IngredientRepo{}
	_ repository.StockMovementRepository = StockMovementRepo{}
)

// IngredientRepo ingredientes en memoria.
type IngredientRepo struct{ view }

func ingredientKey(i *entity.Ingredient) string { return i.ID }

func (r IngredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	return r.write(func(d *dataset) error {
		return insertRow(&d.ingredients, ing, ingredientKey, same[entity.Ingredient])
	})
}

func (r IngredientRepo) GetByID(_ context.Context, id string) (*entity.Ingredient, error) {
	var out *entity.Ingredient
	err := r.read(func(d *dataset) error {
		out = getRow(d.ingredients, id, ingredientKey, same[entity.Ingredient])
		return nil
	})
	return out, err
}

func (r IngredientRepo) Update(_ context.Context, ing *entity.Ingredient) error {
	return r.write(func(d *dataset) error {
		return updateRow(d.ingredients, ing, ingredientKey, same[entity.Ingredient])
	})
}

func (r IngredientRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.ingredients, id, ingredientKey) })
}

func (r IngredientRepo) List(_ context.Context) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	err := r.read(func(d *dataset) error {
		out = listRows(d.ingredients, nil, same[entity.Ingredient])
		return nil
	})
	return out, err
}

func (r IngredientRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.ingredients); return nil })
	return n, err
}

// StockMovementRepo historial de movimientos en memoria.
type StockMovementRepo struct{ view }

func movementKey(m *entity.StockMovement) string { return m.ID }

func (r StockMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	return r.write(func(d *dataset) error {
		return insertRow(&d.movements, m, movementKey, same[entity.StockMovement])
	})
}

func (r StockMovementRepo) List(_ context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.read(func(d *dataset) error {
		out = reversed(listRows(d.movements, func(m *entity.StockMovement) bool {
			return itemID == "" || m.ItemID == itemID
		}, same[entity.StockMovement]))
		return nil
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}
