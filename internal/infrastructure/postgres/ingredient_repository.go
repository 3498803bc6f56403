package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.IngredientRepository    = (*IngredientRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
)

// IngredientRepo ingredientes sobre PostgreSQL. unit_cost es NUMERIC y se lee como
// decimal.Decimal gracias al codec registrado en el pool.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, code, name, unit, quantity, min_stock, location, storage_condition, unit_cost, updated_at`

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := row.Scan(&i.ID, &i.Code, &i.Name, &i.Unit, &i.Quantity, &i.MinStock, &i.Location,
		&i.StorageCondition, &i.UnitCost, &i.UpdatedAt)
	return &i, err
}

func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ingredients (`+ingredientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		i.ID, i.Code, i.Name, i.Unit, i.Quantity, i.MinStock, i.Location, i.StorageCondition, i.UnitCost, i.UpdatedAt)
	if err != nil {
		return insertErr("ingredient "+i.Code, err)
	}
	return nil
}

func (r *IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx, `SELECT `+ingredientColumns+` FROM ingredients WHERE id = $1`, id))
	return noRows(i, err, "get ingredient")
}

func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE ingredients SET name = $2, unit = $3, quantity = $4, min_stock = $5, location = $6,
			storage_condition = $7, unit_cost = $8, updated_at = $9
		WHERE id = $1`,
		i.ID, i.Name, i.Unit, i.Quantity, i.MinStock, i.Location, i.StorageCondition, i.UnitCost, i.UpdatedAt)
	return affected(cmd, err, "update ingredient")
}

func (r *IngredientRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	return affected(cmd, err, "delete ingredient")
}

func (r *IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ingredientColumns+` FROM ingredients ORDER BY code, id`)
	return collect(rows, err, "list ingredients", func(rows pgx.Rows) (*entity.Ingredient, error) { return scanIngredient(rows) })
}

func (r *IngredientRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "ingredients")
}

// StockMovementRepo historial de ajustes sobre PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento ya aplicado.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, item_kind, item_id, type, quantity, before_qty, after_qty, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID, m.ItemKind, m.ItemID, m.Type, m.Quantity, m.Before, m.After, m.Reference, m.CreatedAt, m.CreatedBy)
	if err != nil {
		return insertErr("stock movement", err)
	}
	return nil
}

// List más recientes primero; itemID vacío lista todos y limit <= 0 no limita.
func (r *StockMovementRepo) List(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, item_kind, item_id, type, quantity, before_qty, after_qty, reference, created_at, created_by
		FROM stock_movements
		WHERE ($1::text = '' OR item_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, itemID, lim)
	return collect(rows, err, "list stock movements", func(rows pgx.Rows) (*entity.StockMovement, error) {
		var m entity.StockMovement
		err := rows.Scan(&m.ID, &m.ItemKind, &m.ItemID, &m.Type, &m.Quantity, &m.Before, &m.After,
			&m.Reference, &m.CreatedAt, &m.CreatedBy)
		return &m, err
	})
}
