package entity

import "time"

// ShipmentStatus estado de entrega.
type ShipmentStatus string

const (
	ShipmentPreparing ShipmentStatus = "preparing"
	ShipmentInTransit ShipmentStatus = "in-transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

// Shipment envío creado al despachar un pedido. ReceivedAt es nil hasta la entrega.
type Shipment struct {
	ID         string
	Code       string // SH-1102
	OrderID    string
	OrderCode  string
	StoreID    string
	StoreName  string
	Status     ShipmentStatus
	CreatedAt  time.Time
	ReceivedAt *time.Time
}
