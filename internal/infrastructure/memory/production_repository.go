package memory

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.ProductionPlanRepository  = PlanRepo{}
	_ repository.ProductionBatchRepository = BatchRepo{}
)

// PlanRepo planes de producción en memoria.
type PlanRepo struct{ view }

func planKey(p *entity.ProductionPlan) string { return p.ID }

func (r PlanRepo) Create(_ context.Context, p *entity.ProductionPlan) error {
	return r.write(func(d *dataset) error { return insertRow(&d.plans, p, planKey, same[entity.ProductionPlan]) })
}

func (r PlanRepo) GetByID(_ context.Context, id string) (*entity.ProductionPlan, error) {
	var out *entity.ProductionPlan
	err := r.read(func(d *dataset) error {
		out = getRow(d.plans, id, planKey, same[entity.ProductionPlan])
		return nil
	})
	return out, err
}

func (r PlanRepo) Update(_ context.Context, p *entity.ProductionPlan) error {
	return r.write(func(d *dataset) error { return updateRow(d.plans, p, planKey, same[entity.ProductionPlan]) })
}

func (r PlanRepo) Transition(ctx context.Context, p *entity.ProductionPlan, _ repository.Transition) error {
	return r.Update(ctx, p)
}

func (r PlanRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.plans, id, planKey) })
}

func (r PlanRepo) List(_ context.Context, status entity.PlanStatus) ([]*entity.ProductionPlan, error) {
	var out []*entity.ProductionPlan
	err := r.read(func(d *dataset) error {
		out = listRows(d.plans, func(p *entity.ProductionPlan) bool {
			return status == "" || p.Status == status
		}, same[entity.ProductionPlan])
		return nil
	})
	return out, err
}

func (r PlanRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.plans); return nil })
	return n, err
}

// BatchRepo lotes en memoria.
type BatchRepo struct{ view }

func batchKey(b *entity.ProductionBatch) string { return b.ID }

func (r BatchRepo) Create(_ context.Context, b *entity.ProductionBatch) error {
	return r.write(func(d *dataset) error { return insertRow(&d.batches, b, batchKey, same[entity.ProductionBatch]) })
}

func (r BatchRepo) GetByID(_ context.Context, id string) (*entity.ProductionBatch, error) {
	var out *entity.ProductionBatch
	err := r.read(func(d *dataset) error {
		out = getRow(d.batches, id, batchKey, same[entity.ProductionBatch])
		return nil
	})
	return out, err
}

func (r BatchRepo) Update(_ context.Context, b *entity.ProductionBatch) error {
	return r.write(func(d *dataset) error { return updateRow(d.batches, b, batchKey, same[entity.ProductionBatch]) })
}

func (r BatchRepo) Transition(ctx context.Context, b *entity.ProductionBatch, _ repository.Transition) error {
	return r.Update(ctx, b)
}

func (r BatchRepo) List(_ context.Context, f repository.BatchFilter) ([]*entity.ProductionBatch, error) {
	var out []*entity.ProductionBatch
	err := r.read(func(d *dataset) error {
		out = reversed(listRows(d.batches, func(b *entity.ProductionBatch) bool {
			return (f.Status == "" || b.Status == f.Status) && (f.PlanID == "" || b.PlanID == f.PlanID)
		}, same[entity.ProductionBatch]))
		return nil
	})
	return out, err
}

func (r BatchRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.batches); return nil })
	return n, err
}
