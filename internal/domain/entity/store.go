package entity

import "time"

// FranchiseStore tienda franquiciada abastecida por una cocina central.
type FranchiseStore struct {
	ID          string
	Code        string // ST-001
	KitchenID   string
	KitchenName string
	Name        string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de cocina central.
const (
	KitchenStatusActive   = "active"
	KitchenStatusInactive = "inactive"
)

// CentralKitchen cocina que produce y despacha a las tiendas.
type CentralKitchen struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
