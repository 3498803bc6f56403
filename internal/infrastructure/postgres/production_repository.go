package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.ProductionPlanRepository  = (*PlanRepo)(nil)
	_ repository.ProductionBatchRepository = (*BatchRepo)(nil)
)

// PlanRepo planes de producción sobre PostgreSQL.
type PlanRepo struct {
	q Querier
}

// NewPlanRepository pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, code, product_name, planned_date, quantity, status, created_at, updated_at`

func scanPlan(row pgx.Row) (*entity.ProductionPlan, error) {
	var p entity.ProductionPlan
	err := row.Scan(&p.ID, &p.Code, &p.ProductName, &p.PlannedDate, &p.Quantity, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *PlanRepo) Create(ctx context.Context, p *entity.ProductionPlan) error {
	_, err := r.q.Exec(ctx, `INSERT INTO production_plans (`+planColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Code, p.ProductName, p.PlannedDate, p.Quantity, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return insertErr("plan "+p.Code, err)
	}
	return nil
}

func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.ProductionPlan, error) {
	p, err := scanPlan(r.q.QueryRow(ctx, `SELECT `+planColumns+` FROM production_plans WHERE id = $1`, id))
	return noRows(p, err, "get plan")
}

func (r *PlanRepo) Update(ctx context.Context, p *entity.ProductionPlan) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE production_plans SET product_name = $2, planned_date = $3, quantity = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.ProductName, p.PlannedDate, p.Quantity, p.Status, p.UpdatedAt)
	return affected(cmd, err, "update plan")
}

func (r *PlanRepo) Transition(ctx context.Context, p *entity.ProductionPlan, _ repository.Transition) error {
	return r.Update(ctx, p)
}

func (r *PlanRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM production_plans WHERE id = $1`, id)
	return affected(cmd, err, "delete plan")
}

func (r *PlanRepo) List(ctx context.Context, status entity.PlanStatus) ([]*entity.ProductionPlan, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+planColumns+` FROM production_plans
		WHERE ($1::text = '' OR status = $1)
		ORDER BY created_at, id`, string(status))
	return collect(rows, err, "list plans", func(rows pgx.Rows) (*entity.ProductionPlan, error) { return scanPlan(rows) })
}

func (r *PlanRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "production_plans")
}

// BatchRepo lotes de producción sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, batch_code, plan_id, product_name, quantity, started_at, completed_at, status`

func scanBatch(row pgx.Row) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	var planID *string
	err := row.Scan(&b.ID, &b.BatchCode, &planID, &b.ProductName, &b.Quantity, &b.StartedAt, &b.CompletedAt, &b.Status)
	b.PlanID = deref(planID)
	return &b, err
}

func (r *BatchRepo) Create(ctx context.Context, b *entity.ProductionBatch) error {
	_, err := r.q.Exec(ctx, `INSERT INTO production_batches (`+batchColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.BatchCode, nullable(b.PlanID), b.ProductName, b.Quantity, b.StartedAt, b.CompletedAt, b.Status)
	if err != nil {
		return insertErr("batch "+b.BatchCode, err)
	}
	return nil
}

func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.ProductionBatch, error) {
	b, err := scanBatch(r.q.QueryRow(ctx, `SELECT `+batchColumns+` FROM production_batches WHERE id = $1`, id))
	return noRows(b, err, "get batch")
}

func (r *BatchRepo) Update(ctx context.Context, b *entity.ProductionBatch) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE production_batches SET product_name = $2, quantity = $3, completed_at = $4, status = $5
		WHERE id = $1`,
		b.ID, b.ProductName, b.Quantity, b.CompletedAt, b.Status)
	return affected(cmd, err, "update batch")
}

// List más recientes primero.
func (r *BatchRepo) Transition(ctx context.Context, b *entity.ProductionBatch, _ repository.Transition) error {
	return r.Update(ctx, b)
}

func (r *BatchRepo) List(ctx context.Context, f repository.BatchFilter) ([]*entity.ProductionBatch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+batchColumns+` FROM production_batches
		WHERE ($1::text = '' OR status = $1) AND ($2::text = '' OR plan_id = $2)
		ORDER BY started_at DESC, id DESC`, string(f.Status), f.PlanID)
	return collect(rows, err, "list batches", func(rows pgx.Rows) (*entity.ProductionBatch, error) { return scanBatch(rows) })
}

func (r *BatchRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "production_batches")
}
