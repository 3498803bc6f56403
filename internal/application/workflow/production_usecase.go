package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	wf "github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

// ProductionUseCase planes de producción y lotes. Iniciar un plan crea su lote en la
// misma transacción.
type ProductionUseCase struct {
	repos  repository.Repos
	tx     ports.TxRunner
	events ports.EventPublisher
	log    *logger.Logger
	now    func() time.Time
}

// NewProductionUseCase construye el caso de uso. events y log pueden ser nil.
func NewProductionUseCase(repos repository.Repos, tx ports.TxRunner, events ports.EventPublisher, log *logger.Logger) *ProductionUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductionUseCase{repos: repos, tx: tx, events: events, log: log.Named("production"), now: time.Now}
}

// CreatePlan registra un plan planned.
func (uc *ProductionUseCase) CreatePlan(ctx context.Context, actor session.Identity, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	now := uc.now()
	plan := &entity.ProductionPlan{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		PlannedDate: in.PlannedDate,
		Quantity:    in.Quantity,
		Status:      entity.PlanPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		n, err := r.Plans.Count(ctx)
		if err != nil {
			return err
		}
		plan.Code = wf.NextPlanCode(n)
		return r.Plans.Create(ctx, plan)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("plan", plan.Code).Str("product", plan.ProductName).Int("quantity", plan.Quantity).Msg("plan creado")
	uc.publish(ctx, actor, ports.EventPlanCreated, plan.ID, plan.Code, string(plan.Status))
	return ToPlanResponse(plan), nil
}

// ListPlans planes, opcionalmente de un estado.
func (uc *ProductionUseCase) ListPlans(ctx context.Context, status string) ([]dto.PlanResponse, error) {
	var st entity.PlanStatus
	if status != "" {
		s, err := parsePlanStatus(status)
		if err != nil {
			return nil, err
		}
		st = s
	}
	list, err := uc.repos.Plans.List(ctx, st)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToPlanResponse(p))
	}
	return out, nil
}

// GetPlan plan por ID.
func (uc *ProductionUseCase) GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error) {
	p, err := getPlan(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	return ToPlanResponse(p), nil
}

// DeletePlan elimina un plan que aún no empezó.
func (uc *ProductionUseCase) DeletePlan(ctx context.Context, actor session.Identity, id string) error {
	var code string
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		p, err := getPlan(ctx, r, id)
		if err != nil {
			return err
		}
		if p.Status != entity.PlanPlanned {
			return fmt.Errorf("%w: plan %s en estado %s no se puede eliminar", domain.ErrInvalidTransition, p.Code, p.Status)
		}
		code = p.Code
		return r.Plans.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("plan", code).Str("actor", actor.Username).Msg("plan eliminado")
	uc.publish(ctx, actor, ports.EventPlanDeleted, id, code, "")
	return nil
}

// StartPlan planned -> in-progress y crea exactamente un lote in-progress.
func (uc *ProductionUseCase) StartPlan(ctx context.Context, actor session.Identity, id string) (*dto.StartPlanResponse, error) {
	var (
		plan  *entity.ProductionPlan
		batch *entity.ProductionBatch
	)
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		p, err := getPlan(ctx, r, id)
		if err != nil {
			return err
		}
		n, err := r.Batches.Count(ctx)
		if err != nil {
			return err
		}
		b, err := wf.StartPlan(p, uuid.New().String(), wf.NextBatchCode(n), uc.now())
		if err != nil {
			return err
		}
		if err := r.Plans.Transition(ctx, p, repository.PlanStart); err != nil {
			return err
		}
		if err := r.Batches.Create(ctx, b); err != nil {
			return err
		}
		plan, batch = p, b
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("plan", plan.Code).Str("batch", batch.BatchCode).Msg("producción iniciada")
	uc.publish(ctx, actor, ports.EventPlanStarted, plan.ID, plan.Code, string(plan.Status))
	uc.publish(ctx, actor, ports.EventBatchCreated, batch.ID, batch.BatchCode, string(batch.Status))
	return &dto.StartPlanResponse{Plan: *ToPlanResponse(plan), Batch: *ToBatchResponse(batch)}, nil
}

// CompletePlan in-progress -> completed.
func (uc *ProductionUseCase) CompletePlan(ctx context.Context, actor session.Identity, id string) (*dto.PlanResponse, error) {
	var plan *entity.ProductionPlan
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		p, err := getPlan(ctx, r, id)
		if err != nil {
			return err
		}
		if err := wf.CompletePlan(p, uc.now()); err != nil {
			return err
		}
		plan = p
		return r.Plans.Transition(ctx, p, repository.PlanComplete)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("plan", plan.Code).Msg("plan completado")
	uc.publish(ctx, actor, ports.EventPlanCompleted, plan.ID, plan.Code, string(plan.Status))
	return ToPlanResponse(plan), nil
}

// CreateBatch alta manual de un lote in-progress sin plan.
func (uc *ProductionUseCase) CreateBatch(ctx context.Context, actor session.Identity, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	batch := &entity.ProductionBatch{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		StartedAt:   uc.now(),
		Status:      entity.BatchInProgress,
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		n, err := r.Batches.Count(ctx)
		if err != nil {
			return err
		}
		batch.BatchCode = wf.NextBatchCode(n)
		return r.Batches.Create(ctx, batch)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("batch", batch.BatchCode).Str("product", batch.ProductName).Msg("lote creado")
	uc.publish(ctx, actor, ports.EventBatchCreated, batch.ID, batch.BatchCode, string(batch.Status))
	return ToBatchResponse(batch), nil
}

// ListBatches lotes más recientes primero.
func (uc *ProductionUseCase) ListBatches(ctx context.Context, status, planID string) ([]dto.BatchResponse, error) {
	f := repository.BatchFilter{PlanID: planID}
	if status != "" {
		s, err := parseBatchStatus(status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	list, err := uc.repos.Batches.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *ToBatchResponse(b))
	}
	return out, nil
}

// GetBatch lote por ID.
func (uc *ProductionUseCase) GetBatch(ctx context.Context, id string) (*dto.BatchResponse, error) {
	b, err := getBatch(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	return ToBatchResponse(b), nil
}

// CompleteBatch in-progress|quality-check -> completed.
func (uc *ProductionUseCase) CompleteBatch(ctx context.Context, actor session.Identity, id string) (*dto.BatchResponse, error) {
	return uc.transitionBatch(ctx, actor, id, repository.BatchComplete, ports.EventBatchCompleted, func(b *entity.ProductionBatch) error {
		return wf.CompleteBatch(b, uc.now())
	})
}

// SendToQualityCheck in-progress -> quality-check.
func (uc *ProductionUseCase) SendToQualityCheck(ctx context.Context, actor session.Identity, id string) (*dto.BatchResponse, error) {
	return uc.transitionBatch(ctx, actor, id, repository.BatchSendToQC, ports.EventBatchQualityCheck, wf.SendToQualityCheck)
}

// QualityCheck registra el resultado del control: aprobado completa el lote.
func (uc *ProductionUseCase) QualityCheck(ctx context.Context, actor session.Identity, id string, in dto.QualityCheckRequest) (*dto.BatchResponse, error) {
	event, t := ports.EventBatchQualityCheck, repository.BatchQualityFailed
	if in.Passed {
		event, t = ports.EventBatchCompleted, repository.BatchQualityPassed
	}
	return uc.transitionBatch(ctx, actor, id, t, event, func(b *entity.ProductionBatch) error {
		return wf.RecordQualityCheck(b, in.Passed, uc.now())
	})
}

func (uc *ProductionUseCase) transitionBatch(ctx context.Context, actor session.Identity, id string, t repository.Transition, event string, apply func(*entity.ProductionBatch) error) (*dto.BatchResponse, error) {
	var batch *entity.ProductionBatch
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		b, err := getBatch(ctx, r, id)
		if err != nil {
			return err
		}
		if err := apply(b); err != nil {
			return err
		}
		batch = b
		return r.Batches.Transition(ctx, b, t)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("batch", batch.BatchCode).Str("status", string(batch.Status)).Msg("lote actualizado")
	uc.publish(ctx, actor, event, batch.ID, batch.BatchCode, string(batch.Status))
	return ToBatchResponse(batch), nil
}

func (uc *ProductionUseCase) publish(ctx context.Context, actor session.Identity, typ, id, code, status string) {
	uc.events.Publish(ctx, ports.Event{Type: typ, EntityID: id, Code: code, Status: status, Actor: actor.Username, At: uc.now()})
}

func getPlan(ctx context.Context, r repository.Repos, id string) (*entity.ProductionPlan, error) {
	p, err := r.Plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("plan", id)
	}
	return p, nil
}

func getBatch(ctx context.Context, r repository.Repos, id string) (*entity.ProductionBatch, error) {
	b, err := r.Batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("lote", id)
	}
	return b, nil
}

func parsePlanStatus(s string) (entity.PlanStatus, error) {
	switch st := entity.PlanStatus(s); st {
	case entity.PlanPlanned, entity.PlanInProgress, entity.PlanCompleted:
		return st, nil
	}
	return "", fmt.Errorf("%w: estado de plan %q", domain.ErrInvalidInput, s)
}

func parseBatchStatus(s string) (entity.BatchStatus, error) {
	switch st := entity.BatchStatus(s); st {
	case entity.BatchInProgress, entity.BatchQualityCheck, entity.BatchCompleted:
		return st, nil
	}
	return "", fmt.Errorf("%w: estado de lote %q", domain.ErrInvalidInput, s)
}

// ToPlanResponse mapea el plan con sus acciones.
func ToPlanResponse(p *entity.ProductionPlan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:          p.ID,
		Code:        p.Code,
		ProductName: p.ProductName,
		PlannedDate: p.PlannedDate,
		Quantity:    p.Quantity,
		Status:      string(p.Status),
		Actions:     actionNames(wf.AvailablePlanActions(p.Status)),
	}
}

// ToBatchResponse mapea el lote con sus acciones.
func ToBatchResponse(b *entity.ProductionBatch) *dto.BatchResponse {
	return &dto.BatchResponse{
		ID:          b.ID,
		BatchCode:   b.BatchCode,
		PlanID:      b.PlanID,
		ProductName: b.ProductName,
		Quantity:    b.Quantity,
		StartTime:   b.StartedAt,
		CompletedAt: b.CompletedAt,
		Status:      string(b.Status),
		Actions:     actionNames(wf.AvailableBatchActions(b.Status)),
	}
}
