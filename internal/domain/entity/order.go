package entity

import "time"

// OrderStatus estado del ciclo de vida de un pedido de tienda.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipping   OrderStatus = "shipping"
	OrderDelivered  OrderStatus = "delivered"
)

// Order pedido de una tienda a la cocina central.
type Order struct {
	ID            string
	Code          string // SO-2401
	StoreID       string
	StoreName     string
	OrderDate     time.Time
	DeliveryDate  time.Time
	TotalQuantity int
	ItemCount     int
	Status        OrderStatus
	Items         []OrderItem
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem línea de pedido.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
}
