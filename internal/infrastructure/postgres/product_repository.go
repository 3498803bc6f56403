package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)
)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, product_type_id, name, unit, status, quantity, min_stock, location, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var typeID *string
	err := row.Scan(&p.ID, &p.Code, &typeID, &p.Name, &p.Unit, &p.Status, &p.Quantity, &p.MinStock,
		&p.Location, &p.CreatedAt, &p.UpdatedAt)
	p.ProductTypeID = deref(typeID)
	return &p, err
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Code, nullable(p.ProductTypeID), p.Name, p.Unit, p.Status, p.Quantity, p.MinStock,
		p.Location, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return insertErr("product "+p.Code, err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	return noRows(p, err, "get product")
}

// Update actualiza catálogo y stock terminado.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET product_type_id = $2, name = $3, unit = $4, status = $5, quantity = $6,
			min_stock = $7, location = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, nullable(p.ProductTypeID), p.Name, p.Unit, p.Status, p.Quantity, p.MinStock, p.Location, p.UpdatedAt,
	)
	return affected(cmd, err, "update product")
}

// SetStock solo toca cantidad y fecha.
func (r *ProductRepo) SetStock(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`,
		p.ID, p.Quantity, p.UpdatedAt)
	return affected(cmd, err, "set product stock")
}

// Delete elimina un producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return affected(cmd, err, "delete product")
}

// List productos filtrados por tipo y estado.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE ($1::text = '' OR product_type_id = $1) AND ($2::text = '' OR status = $2)
		ORDER BY created_at, id`, f.ProductTypeID, f.Status)
	return collect(rows, err, "list products", func(rows pgx.Rows) (*entity.Product, error) { return scanProduct(rows) })
}

// Count total de productos (numeración de códigos).
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "products")
}

// ProductTypeRepo tipos de producto sobre PostgreSQL.
type ProductTypeRepo struct {
	q Querier
}

// NewProductTypeRepository pasar pool o tx (Querier).
func NewProductTypeRepository(q Querier) *ProductTypeRepo {
	return &ProductTypeRepo{q: q}
}

const productTypeColumns = `id, name, description, storage_condition, created_at, updated_at`

func scanProductType(row pgx.Row) (*entity.ProductType, error) {
	var t entity.ProductType
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.StorageCondition, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *ProductTypeRepo) Create(ctx context.Context, t *entity.ProductType) error {
	_, err := r.q.Exec(ctx, `INSERT INTO product_types (`+productTypeColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Description, t.StorageCondition, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return insertErr("product type "+t.Name, err)
	}
	return nil
}

func (r *ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	t, err := scanProductType(r.q.QueryRow(ctx, `SELECT `+productTypeColumns+` FROM product_types WHERE id = $1`, id))
	return noRows(t, err, "get product type")
}

func (r *ProductTypeRepo) Update(ctx context.Context, t *entity.ProductType) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE product_types SET name = $2, description = $3, storage_condition = $4, updated_at = $5
		WHERE id = $1`,
		t.ID, t.Name, t.Description, t.StorageCondition, t.UpdatedAt)
	return affected(cmd, err, "update product type")
}

func (r *ProductTypeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_types WHERE id = $1`, id)
	return affected(cmd, err, "delete product type")
}

func (r *ProductTypeRepo) List(ctx context.Context) ([]*entity.ProductType, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productTypeColumns+` FROM product_types ORDER BY created_at, id`)
	return collect(rows, err, "list product types", func(rows pgx.Rows) (*entity.ProductType, error) { return scanProductType(rows) })
}
