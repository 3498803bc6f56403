package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo recetas sobre PostgreSQL; las líneas viven en una columna JSONB.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

type recipeLine struct {
	IngredientID string          `json:"ingredient_id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

func encodeRecipeLines(lines []entity.RecipeIngredient) ([]byte, error) {
	out := make([]recipeLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, recipeLine{IngredientID: l.IngredientID, Name: l.Name, Quantity: l.Quantity, Unit: l.Unit})
	}
	return json.Marshal(out)
}

func decodeRecipeLines(raw []byte) ([]entity.RecipeIngredient, error) {
	var lines []recipeLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	out := make([]entity.RecipeIngredient, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.RecipeIngredient{IngredientID: l.IngredientID, Name: l.Name, Quantity: l.Quantity, Unit: l.Unit})
	}
	return out, nil
}

const recipeColumns = `id, code, name, category, product_id, servings, prep_minutes, instructions, ingredients, created_at, updated_at`

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var rec entity.Recipe
	var productID *string
	var lines []byte
	if err := row.Scan(&rec.ID, &rec.Code, &rec.Name, &rec.Category, &productID, &rec.Servings, &rec.PrepMinutes,
		&rec.Instructions, &lines, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.ProductID = deref(productID)
	ings, err := decodeRecipeLines(lines)
	if err != nil {
		return nil, fmt.Errorf("decode ingredients %s: %w", rec.ID, err)
	}
	rec.Ingredients = ings
	return &rec, nil
}

func (r *RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	lines, err := encodeRecipeLines(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredients: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.Code, rec.Name, rec.Category, nullable(rec.ProductID), rec.Servings, rec.PrepMinutes,
		rec.Instructions, lines, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return insertErr("recipe "+rec.Code, err)
	}
	return nil
}

func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	rec, err := scanRecipe(r.q.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	return noRows(rec, err, "get recipe")
}

func (r *RecipeRepo) Update(ctx context.Context, rec *entity.Recipe) error {
	lines, err := encodeRecipeLines(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredients: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE recipes SET name = $2, category = $3, product_id = $4, servings = $5, prep_minutes = $6,
			instructions = $7, ingredients = $8, updated_at = $9
		WHERE id = $1`,
		rec.ID, rec.Name, rec.Category, nullable(rec.ProductID), rec.Servings, rec.PrepMinutes,
		rec.Instructions, lines, rec.UpdatedAt)
	return affected(cmd, err, "update recipe")
}

func (r *RecipeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	return affected(cmd, err, "delete recipe")
}

// List filtra por categoría sin distinguir mayúsculas.
func (r *RecipeRepo) List(ctx context.Context, category string) ([]*entity.Recipe, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+recipeColumns+` FROM recipes
		WHERE ($1::text = '' OR lower(category) = lower($1))
		ORDER BY created_at, id`, category)
	return collect(rows, err, "list recipes", func(rows pgx.Rows) (*entity.Recipe, error) { return scanRecipe(rows) })
}

func (r *RecipeRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "recipes")
}
