package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// IngredientRepository puerto de persistencia de ingredientes.
type IngredientRepository interface {
	Create(ctx context.Context, ing *entity.Ingredient) error
	GetByID(ctx context.Context, id string) (*entity.Ingredient, error)
	Update(ctx context.Context, ing *entity.Ingredient) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Ingredient, error)
	Count(ctx context.Context) (int, error)
}

// StockMovementRepository historial de ajustes de stock.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	// List movimientos más recientes primero; itemID vacío lista todos. limit <= 0 sin límite.
	List(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error)
}
