package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// UserFilter filtros opcionales de listado.
type UserFilter struct {
	Role   entity.Role
	Status string
}

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID/GetByUsername devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
}
