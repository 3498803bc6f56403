package memory

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository    = OrderRepo{}
	_ repository.ShipmentRepository = ShipmentRepo{}
)

// OrderRepo pedidos en memoria.
type OrderRepo struct{ view }

func orderKey(o *entity.Order) string { return o.ID }

func (r OrderRepo) Create(_ context.Context, o *entity.Order) error {
	return r.write(func(d *dataset) error { return insertRow(&d.orders, o, orderKey, cloneOrder) })
}

func (r OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	var out *entity.Order
	err := r.read(func(d *dataset) error {
		out = getRow(d.orders, id, orderKey, cloneOrder)
		return nil
	})
	return out, err
}

func (r OrderRepo) Update(_ context.Context, o *entity.Order) error {
	return r.write(func(d *dataset) error { return updateRow(d.orders, o, orderKey, cloneOrder) })
}

// Transition en memoria es un Update.
func (r OrderRepo) Transition(ctx context.Context, o *entity.Order, _ repository.Transition) error {
	return r.Update(ctx, o)
}

func (r OrderRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.orders, id, orderKey) })
}

func (r OrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	err := r.read(func(d *dataset) error {
		out = reversed(listRows(d.orders, func(o *entity.Order) bool {
			return (f.Status == "" || o.Status == f.Status) && (f.StoreID == "" || o.StoreID == f.StoreID)
		}, cloneOrder))
		return nil
	})
	return out, err
}

func (r OrderRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.orders); return nil })
	return n, err
}

// ShipmentRepo envíos en memoria.
type ShipmentRepo struct{ view }

func shipmentKey(s *entity.Shipment) string { return s.ID }

func (r ShipmentRepo) Create(_ context.Context, s *entity.Shipment) error {
	return r.write(func(d *dataset) error { return insertRow(&d.shipments, s, shipmentKey, same[entity.Shipment]) })
}

func (r ShipmentRepo) GetByID(_ context.Context, id string) (*entity.Shipment, error) {
	var out *entity.Shipment
	err := r.read(func(d *dataset) error {
		out = getRow(d.shipments, id, shipmentKey, same[entity.Shipment])
		return nil
	})
	return out, err
}

func (r ShipmentRepo) Update(_ context.Context, s *entity.Shipment) error {
	return r.write(func(d *dataset) error { return updateRow(d.shipments, s, shipmentKey, same[entity.Shipment]) })
}

func (r ShipmentRepo) Transition(ctx context.Context, s *entity.Shipment, _ repository.Transition) error {
	return r.Update(ctx, s)
}

func (r ShipmentRepo) List(_ context.Context, f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	err := r.read(func(d *dataset) error {
		out = reversed(listRows(d.shipments, func(s *entity.Shipment) bool {
			return (f.Status == "" || s.Status == f.Status) && (f.OrderID == "" || s.OrderID == f.OrderID)
		}, same[entity.Shipment]))
		return nil
	})
	return out, err
}

func (r ShipmentRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.shipments); return nil })
	return n, err
}
