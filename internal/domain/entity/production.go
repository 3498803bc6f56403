package entity

import "time"

// PlanStatus estado de un plan de producción.
type PlanStatus string

const (
	PlanPlanned    PlanStatus = "planned"
	PlanInProgress PlanStatus = "in-progress"
	PlanCompleted  PlanStatus = "completed"
)

// ProductionPlan producción planificada de un producto.
type ProductionPlan struct {
	ID          string
	Code        string // PP-001
	ProductName string
	PlannedDate time.Time
	Quantity    int
	Status      PlanStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BatchStatus estado de un lote.
type BatchStatus string

const (
	BatchInProgress   BatchStatus = "in-progress"
	BatchQualityCheck BatchStatus = "quality-check"
	BatchCompleted    BatchStatus = "completed"
)

// ProductionBatch lote en producción. PlanID vacío para lotes creados a mano.
type ProductionBatch struct {
	ID          string
	BatchCode   string // PB-1046
	PlanID      string
	ProductName string
	Quantity    int
	StartedAt   time.Time
	CompletedAt *time.Time
	Status      BatchStatus
}
