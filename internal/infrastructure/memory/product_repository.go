package memory

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository     = ProductRepo{}
	_ repository.ProductTypeRepository = ProductTypeRepo{}
)

// ProductRepo productos en memoria.
type ProductRepo struct{ view }

func productKey(p *entity.Product) string { return p.ID }

func (r ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.write(func(d *dataset) error { return insertRow(&d.products, p, productKey, same[entity.Product]) })
}

func (r ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.read(func(d *dataset) error {
		out = getRow(d.products, id, productKey, same[entity.Product])
		return nil
	})
	return out, err
}

func (r ProductRepo) Update(_ context.Context, p *entity.Product) error {
	return r.write(func(d *dataset) error { return updateRow(d.products, p, productKey, same[entity.Product]) })
}

func (r ProductRepo) SetStock(ctx context.Context, p *entity.Product) error {
	return r.Update(ctx, p)
}

func (r ProductRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.products, id, productKey) })
}

func (r ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.read(func(d *dataset) error {
		out = listRows(d.products, func(p *entity.Product) bool {
			return (f.ProductTypeID == "" || p.ProductTypeID == f.ProductTypeID) && (f.Status == "" || p.Status == f.Status)
		}, same[entity.Product])
		return nil
	})
	return out, err
}

func (r ProductRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.products); return nil })
	return n, err
}

// ProductTypeRepo tipos de producto en memoria.
type ProductTypeRepo struct{ view }

func productTypeKey(p *entity.ProductType) string { return p.ID }

func (r ProductTypeRepo) Create(_ context.Context, pt *entity.ProductType) error {
	return r.write(func(d *dataset) error {
		return insertRow(&d.productTypes, pt, productTypeKey, same[entity.ProductType])
	})
}

func (r ProductTypeRepo) GetByID(_ context.Context, id string) (*entity.ProductType, error) {
	var out *entity.ProductType
	err := r.read(func(d *dataset) error {
		out = getRow(d.productTypes, id, productTypeKey, same[entity.ProductType])
		return nil
	})
	return out, err
}

func (r ProductTypeRepo) Update(_ context.Context, pt *entity.ProductType) error {
	return r.write(func(d *dataset) error {
		return updateRow(d.productTypes, pt, productTypeKey, same[entity.ProductType])
	})
}

func (r ProductTypeRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.productTypes, id, productTypeKey) })
}

func (r ProductTypeRepo) List(_ context.Context) ([]*entity.ProductType, error) {
	var out []*entity.ProductType
	err := r.read(func(d *dataset) error {
		out = listRows(d.productTypes, nil, same[entity.ProductType])
		return nil
	})
	return out, err
}
