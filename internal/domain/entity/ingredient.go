package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient materia prima en la cocina central. Quantity nunca es negativa.
type Ingredient struct {
	ID               string
	Code             string // ING-001
	Name             string
	Unit             string
	Quantity         int
	MinStock         int
	Location         string
	StorageCondition string
	UnitCost         decimal.Decimal
	UpdatedAt        time.Time
}
