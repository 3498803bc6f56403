package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ repository.RecipeRepository = RecipeRepo{}

// RecipeRepo recetas en memoria.
type RecipeRepo struct{ view }

func recipeKey(r *entity.Recipe) string { return r.ID }

func (r RecipeRepo) Create(_ context.Context, rec *entity.Recipe) error {
	return r.write(func(d *dataset) error { return insertRow(&d.recipes, rec, recipeKey, cloneRecipe) })
}

func (r RecipeRepo) GetByID(_ context.Context, id string) (*entity.Recipe, error) {
	var out *entity.Recipe
	err := r.read(func(d *dataset) error {
		out = getRow(d.recipes, id, recipeKey, cloneRecipe)
		return nil
	})
	return out, err
}

func (r RecipeRepo) Update(_ context.Context, rec *entity.Recipe) error {
	return r.write(func(d *dataset) error { return updateRow(d.recipes, rec, recipeKey, cloneRecipe) })
}

func (r RecipeRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.recipes, id, recipeKey) })
}

func (r RecipeRepo) List(_ context.Context, category string) ([]*entity.Recipe, error) {
	var out []*entity.Recipe
	err := r.read(func(d *dataset) error {
		out = listRows(d.recipes, func(rec *entity.Recipe) bool {
			return category == "" || strings.EqualFold(rec.Category, category)
		}, cloneRecipe)
		return nil
	})
	return out, err
}

func (r RecipeRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.recipes); return nil })
	return n, err
}
