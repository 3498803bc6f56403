package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository    = (*OrderRepo)(nil)
	_ repository.ShipmentRepository = (*ShipmentRepo)(nil)
)

// OrderRepo pedidos sobre PostgreSQL; las líneas viven en una columna JSONB.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

type orderLine struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

const orderColumns = `id, code, store_id, store_name, order_date, delivery_date, total_quantity, item_count, status, items, created_by, created_at, updated_at`

func encodeOrderLines(items []entity.OrderItem) ([]byte, error) {
	out := make([]orderLine, 0, len(items))
	for _, it := range items {
		out = append(out, orderLine{ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity})
	}
	return json.Marshal(out)
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var storeID *string
	var raw []byte
	if err := row.Scan(&o.ID, &o.Code, &storeID, &o.StoreName, &o.OrderDate, &o.DeliveryDate, &o.TotalQuantity,
		&o.ItemCount, &o.Status, &raw, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.StoreID = deref(storeID)
	var lines []orderLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode items %s: %w", o.ID, err)
	}
	o.Items = make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		o.Items = append(o.Items, entity.OrderItem{ProductID: l.ProductID, ProductName: l.ProductName, Quantity: l.Quantity})
	}
	return &o, nil
}

func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	items, err := encodeOrderLines(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.Code, nullable(o.StoreID), o.StoreName, o.OrderDate, o.DeliveryDate, o.TotalQuantity,
		o.ItemCount, o.Status, items, o.CreatedBy, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return insertErr("order "+o.Code, err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	return noRows(o, err, "get order")
}

func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	items, err := encodeOrderLines(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE orders SET store_id = $2, store_name = $3, delivery_date = $4, total_quantity = $5,
			item_count = $6, status = $7, items = $8, updated_at = $9
		WHERE id = $1`,
		o.ID, nullable(o.StoreID), o.StoreName, o.DeliveryDate, o.TotalQuantity, o.ItemCount, o.Status, items, o.UpdatedAt)
	return affected(cmd, err, "update order")
}

// Transition guarda la fila completa; la transacción la aporta el TxRunner.
func (r *OrderRepo) Transition(ctx context.Context, o *entity.Order, _ repository.Transition) error {
	return r.Update(ctx, o)
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return affected(cmd, err, "delete order")
}

// List más recientes primero.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE ($1::text = '' OR status = $1) AND ($2::text = '' OR store_id = $2)
		ORDER BY created_at DESC, id DESC`, string(f.Status), f.StoreID)
	return collect(rows, err, "list orders", func(rows pgx.Rows) (*entity.Order, error) { return scanOrder(rows) })
}

func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "orders")
}

// ShipmentRepo envíos sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, code, order_id, order_code, store_id, store_name, status, created_at, received_at`

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	var storeID *string
	err := row.Scan(&s.ID, &s.Code, &s.OrderID, &s.OrderCode, &storeID, &s.StoreName, &s.Status, &s.CreatedAt, &s.ReceivedAt)
	s.StoreID = deref(storeID)
	return &s, err
}

func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	_, err := r.q.Exec(ctx, `INSERT INTO shipments (`+shipmentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Code, s.OrderID, s.OrderCode, nullable(s.StoreID), s.StoreName, s.Status, s.CreatedAt, s.ReceivedAt)
	if err != nil {
		return insertErr("shipment "+s.Code, err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id = $1`, id))
	return noRows(s, err, "get shipment")
}

func (r *ShipmentRepo) Update(ctx context.Context, s *entity.Shipment) error {
	cmd, err := r.q.Exec(ctx, `UPDATE shipments SET status = $2, received_at = $3 WHERE id = $1`,
		s.ID, s.Status, s.ReceivedAt)
	return affected(cmd, err, "update shipment")
}

// List más recientes primero.
func (r *ShipmentRepo) Transition(ctx context.Context, s *entity.Shipment, _ repository.Transition) error {
	return r.Update(ctx, s)
}

func (r *ShipmentRepo) List(ctx context.Context, f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+shipmentColumns+` FROM shipments
		WHERE ($1::text = '' OR status = $1) AND ($2::text = '' OR order_id = $2)
		ORDER BY created_at DESC, id DESC`, string(f.Status), f.OrderID)
	return collect(rows, err, "list shipments", func(rows pgx.Rows) (*entity.Shipment, error) { return scanShipment(rows) })
}

func (r *ShipmentRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "shipments")
}
