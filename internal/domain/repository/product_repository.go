package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// ProductFilter filtros opcionales de listado de productos.
type ProductFilter struct {
	ProductTypeID string
	Status        string
}

// ProductRepository puerto de persistencia de productos (catálogo + stock terminado).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// SetStock persiste un conteo directo de product.Quantity.
	SetStock(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
}

// ProductTypeRepository puerto de persistencia de tipos de producto.
type ProductTypeRepository interface {
	Create(ctx context.Context, pt *entity.ProductType) error
	GetByID(ctx context.Context, id string) (*entity.ProductType, error)
	Update(ctx context.Context, pt *entity.ProductType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.ProductType, error)
}
