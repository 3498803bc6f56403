package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// OrderFilter filtros opcionales de pedidos.
type OrderFilter struct {
	Status  entity.OrderStatus
	StoreID string
}

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// Transition persiste el estado nuevo del pedido: OrderProcess, OrderShip u OrderDeliver.
	Transition(ctx context.Context, order *entity.Order, t Transition) error
	Delete(ctx context.Context, id string) error
	// List más recientes primero.
	List(ctx context.Context, f OrderFilter) ([]*entity.Order, error)
	Count(ctx context.Context) (int, error)
}

// ShipmentFilter filtros opcionales de envíos.
type ShipmentFilter struct {
	Status  entity.ShipmentStatus
	OrderID string
}

// ShipmentRepository puerto de persistencia de envíos.
type ShipmentRepository interface {
	Create(ctx context.Context, shipment *entity.Shipment) error
	GetByID(ctx context.Context, id string) (*entity.Shipment, error)
	Update(ctx context.Context, shipment *entity.Shipment) error
	Transition(ctx context.Context, shipment *entity.Shipment, t Transition) error
	List(ctx context.Context, f ShipmentFilter) ([]*entity.Shipment, error)
	Count(ctx context.Context) (int, error)
}
