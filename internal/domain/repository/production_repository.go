package repository

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// ProductionPlanRepository puerto de persistencia de planes.
type ProductionPlanRepository interface {
	Create(ctx context.Context, plan *entity.ProductionPlan) error
	GetByID(ctx context.Context, id string) (*entity.ProductionPlan, error)
	Update(ctx context.Context, plan *entity.ProductionPlan) error
	Transition(ctx context.Context, plan *entity.ProductionPlan, t Transition) error
	Delete(ctx context.Context, id string) error
	// List filtra por estado si no está vacío.
	List(ctx context.Context, status entity.PlanStatus) ([]*entity.ProductionPlan, error)
	Count(ctx context.Context) (int, error)
}

// BatchFilter filtros opcionales de lotes.
type BatchFilter struct {
	Status entity.BatchStatus
	PlanID string
}

// ProductionBatchRepository puerto de persistencia de lotes.
type ProductionBatchRepository interface {
	Create(ctx context.Context, batch *entity.ProductionBatch) error
	GetByID(ctx context.Context, id string) (*entity.ProductionBatch, error)
	Update(ctx context.Context, batch *entity.ProductionBatch) error
	Transition(ctx context.Context, batch *entity.ProductionBatch, t Transition) error
	// List más recientes primero.
	List(ctx context.Context, f BatchFilter) ([]*entity.ProductionBatch, error)
	Count(ctx context.Context) (int, error)
}
