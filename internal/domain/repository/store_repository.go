package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// FranchiseStoreRepository puerto de persistencia de tiendas franquiciadas.
type FranchiseStoreRepository interface {
	Create(ctx context.Context, store *entity.FranchiseStore) error
	GetByID(ctx context.Context, id string) (*entity.FranchiseStore, error)
	Update(ctx context.Context, store *entity.FranchiseStore) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.FranchiseStore, error)
	Count(ctx context.Context) (int, error)
}

// CentralKitchenRepository puerto de persistencia de cocinas centrales.
type CentralKitchenRepository interface {
	Create(ctx context.Context, kitchen *entity.CentralKitchen) error
	GetByID(ctx context.Context, id string) (*entity.CentralKitchen, error)
	Update(ctx context.Context, kitchen *entity.CentralKitchen) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.CentralKitchen, error)
}
