package workflow

import (
	"time"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// AvailablePlanActions acciones ofrecidas para un plan.
func AvailablePlanActions(s entity.PlanStatus) []Action {
	switch s {
	case entity.PlanPlanned:
		return []Action{ActionStartProduction}
	case entity.PlanInProgress:
		return []Action{ActionCompletePlan}
	default:
		return nil
	}
}

// StartPlan planned -> in-progress. Crea exactamente un lote in-progress con el producto
// y la cantidad del plan.
func StartPlan(p *entity.ProductionPlan, batchID, batchCode string, now time.Time) (*entity.ProductionBatch, error) {
	if p.Status != entity.PlanPlanned {
		return nil, invalid("plan", p.Code, p.Status, ActionStartProduction)
	}
	p.Status = entity.PlanInProgress
	p.UpdatedAt = now
	return &entity.ProductionBatch{
		ID:          batchID,
		BatchCode:   batchCode,
		PlanID:      p.ID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		StartedAt:   now,
		Status:      entity.BatchInProgress,
	}, nil
}

// CompletePlan in-progress -> completed.
func CompletePlan(p *entity.ProductionPlan, now time.Time) error {
	if p.Status != entity.PlanInProgress {
		return invalid("plan", p.Code, p.Status, ActionCompletePlan)
	}
	p.Status = entity.PlanCompleted
	p.UpdatedAt = now
	return nil
}

// AvailableBatchActions acciones ofrecidas para un lote.
func AvailableBatchActions(s entity.BatchStatus) []Action {
	switch s {
	case entity.BatchInProgress:
		return []Action{ActionQualityCheck, ActionComplete}
	case entity.BatchQualityCheck:
		return []Action{ActionComplete}
	default:
		return nil
	}
}

// SendToQualityCheck in-progress -> quality-check. No se reingresa a quality-check.
func SendToQualityCheck(b *entity.ProductionBatch) error {
	if b.Status != entity.BatchInProgress {
		return invalid("lote", b.BatchCode, b.Status, ActionQualityCheck)
	}
	b.Status = entity.BatchQualityCheck
	return nil
}

// CompleteBatch in-progress|quality-check -> completed. Un lote completado no se reabre.
func CompleteBatch(b *entity.ProductionBatch, now time.Time) error {
	if b.Status != entity.BatchInProgress && b.Status != entity.BatchQualityCheck {
		return invalid("lote", b.BatchCode, b.Status, ActionComplete)
	}
	b.Status = entity.BatchCompleted
	done := now
	b.CompletedAt = &done
	return nil
}

// RecordQualityCheck aprobado -> completed; rechazado desde in-progress -> quality-check.
// Un rechazo sobre un lote que ya está en quality-check no es una transición válida.
func RecordQualityCheck(b *entity.ProductionBatch, passed bool, now time.Time) error {
	if passed {
		return CompleteBatch(b, now)
	}
	return SendToQualityCheck(b)
}
