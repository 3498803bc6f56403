package entity

import "time"

// Estados de catálogo de un producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Clasificación de stock.
const (
	StockAvailable  = "available"
	StockInStock    = "in-stock"
	StockLow        = "low-stock"
	StockOutOfStock = "out-of-stock"
)

// ProductType agrupación de productos (panadería, bebidas...).
type ProductType struct {
	ID               string
	Name             string
	Description      string
	StorageCondition string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Product producto terminado. Además del catálogo lleva el stock de producto terminado
// de la cocina central (Quantity, MinStock, Location).
type Product struct {
	ID            string
	Code          string // PRD-001
	ProductTypeID string
	Name          string
	Unit          string
	Status        string // active, inactive
	Quantity      int
	MinStock      int
	Location      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
