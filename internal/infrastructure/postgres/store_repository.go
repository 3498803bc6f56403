package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.FranchiseStoreRepository = (*FranchiseStoreRepo)(nil)
	_ repository.CentralKitchenRepository = (*CentralKitchenRepo)(nil)
)

// FranchiseStoreRepo tiendas franquiciadas sobre PostgreSQL.
type FranchiseStoreRepo struct {
	q Querier
}

// NewFranchiseStoreRepository pasar pool o tx (Querier).
func NewFranchiseStoreRepository(q Querier) *FranchiseStoreRepo {
	return &FranchiseStoreRepo{q: q}
}

const storeColumns = `id, code, kitchen_id, kitchen_name, name, address, created_at, updated_at`

func scanStore(row pgx.Row) (*entity.FranchiseStore, error) {
	var s entity.FranchiseStore
	var kitchenID *string
	err := row.Scan(&s.ID, &s.Code, &kitchenID, &s.KitchenName, &s.Name, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	s.KitchenID = deref(kitchenID)
	return &s, err
}

func (r *FranchiseStoreRepo) Create(ctx context.Context, s *entity.FranchiseStore) error {
	_, err := r.q.Exec(ctx, `INSERT INTO franchise_stores (`+storeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Code, nullable(s.KitchenID), s.KitchenName, s.Name, s.Address, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return insertErr("store "+s.Code, err)
	}
	return nil
}

func (r *FranchiseStoreRepo) GetByID(ctx context.Context, id string) (*entity.FranchiseStore, error) {
	s, err := scanStore(r.q.QueryRow(ctx, `SELECT `+storeColumns+` FROM franchise_stores WHERE id = $1`, id))
	return noRows(s, err, "get store")
}

func (r *FranchiseStoreRepo) Update(ctx context.Context, s *entity.FranchiseStore) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE franchise_stores SET kitchen_id = $2, kitchen_name = $3, name = $4, address = $5, updated_at = $6
		WHERE id = $1`,
		s.ID, nullable(s.KitchenID), s.KitchenName, s.Name, s.Address, s.UpdatedAt)
	return affected(cmd, err, "update store")
}

func (r *FranchiseStoreRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM franchise_stores WHERE id = $1`, id)
	return affected(cmd, err, "delete store")
}

func (r *FranchiseStoreRepo) List(ctx context.Context) ([]*entity.FranchiseStore, error) {
	rows, err := r.q.Query(ctx, `SELECT `+storeColumns+` FROM franchise_stores ORDER BY created_at, id`)
	return collect(rows, err, "list stores", func(rows pgx.Rows) (*entity.FranchiseStore, error) { return scanStore(rows) })
}

func (r *FranchiseStoreRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "franchise_stores")
}

// CentralKitchenRepo cocinas centrales sobre PostgreSQL.
type CentralKitchenRepo struct {
	q Querier
}

// NewCentralKitchenRepository pasar pool o tx (Querier).
func NewCentralKitchenRepository(q Querier) *CentralKitchenRepo {
	return &CentralKitchenRepo{q: q}
}

const kitchenColumns = `id, name, address, phone, status, created_at, updated_at`

func scanKitchen(row pgx.Row) (*entity.CentralKitchen, error) {
	var k entity.CentralKitchen
	err := row.Scan(&k.ID, &k.Name, &k.Address, &k.Phone, &k.Status, &k.CreatedAt, &k.UpdatedAt)
	return &k, err
}

func (r *CentralKitchenRepo) Create(ctx context.Context, k *entity.CentralKitchen) error {
	_, err := r.q.Exec(ctx, `INSERT INTO central_kitchens (`+kitchenColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		k.ID, k.Name, k.Address, k.Phone, k.Status, k.CreatedAt, k.UpdatedAt)
	if err != nil {
		return insertErr("kitchen "+k.Name, err)
	}
	return nil
}

func (r *CentralKitchenRepo) GetByID(ctx context.Context, id string) (*entity.CentralKitchen, error) {
	k, err := scanKitchen(r.q.QueryRow(ctx, `SELECT `+kitchenColumns+` FROM central_kitchens WHERE id = $1`, id))
	return noRows(k, err, "get kitchen")
}

func (r *CentralKitchenRepo) Update(ctx context.Context, k *entity.CentralKitchen) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE central_kitchens SET name = $2, address = $3, phone = $4, status = $5, updated_at = $6
		WHERE id = $1`,
		k.ID, k.Name, k.Address, k.Phone, k.Status, k.UpdatedAt)
	return affected(cmd, err, "update kitchen")
}

func (r *CentralKitchenRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM central_kitchens WHERE id = $1`, id)
	return affected(cmd, err, "delete kitchen")
}

func (r *CentralKitchenRepo) List(ctx context.Context) ([]*entity.CentralKitchen, error) {
	rows, err := r.q.Query(ctx, `SELECT `+kitchenColumns+` FROM central_kitchens ORDER BY created_at, id`)
	return collect(rows, err, "list kitchens", func(rows pgx.Rows) (*entity.CentralKitchen, error) { return scanKitchen(rows) })
}
