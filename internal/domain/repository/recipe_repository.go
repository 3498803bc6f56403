package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// RecipeRepository puerto de persistencia de recetas.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe) error
	GetByID(ctx context.Context, id string) (*entity.Recipe, error)
	Update(ctx context.Context, recipe *entity.Recipe) error
	Delete(ctx context.Context, id string) error
	// List filtra por categoría si no está vacía.
	List(ctx context.Context, category string) ([]*entity.Recipe, error)
	Count(ctx context.Context) (int, error)
}
