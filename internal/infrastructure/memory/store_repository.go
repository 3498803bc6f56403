package memory

import (
	"context"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.FranchiseStoreRepository = FranchiseStoreRepo{}
	_ repository.CentralKitchenRepository = CentralKitchenRepo{}
)

// FranchiseStoreRepo tiendas en memoria.
type FranchiseStoreRepo struct{ view }

func storeKey(s *entity.FranchiseStore) string { return s.ID }

func (r FranchiseStoreRepo) Create(_ context.Context, s *entity.FranchiseStore) error {
	return r.write(func(d *dataset) error { return insertRow(&d.stores, s, storeKey, same[entity.FranchiseStore]) })
}

func (r FranchiseStoreRepo) GetByID(_ context.Context, id string) (*entity.FranchiseStore, error) {
	var out *entity.FranchiseStore
	err := r.read(func(d *dataset) error {
		out = getRow(d.stores, id, storeKey, same[entity.FranchiseStore])
		return nil
	})
	return out, err
}

func (r FranchiseStoreRepo) Update(_ context.Context, s *entity.FranchiseStore) error {
	return r.write(func(d *dataset) error { return updateRow(d.stores, s, storeKey, same[entity.FranchiseStore]) })
}

func (r FranchiseStoreRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.stores, id, storeKey) })
}

func (r FranchiseStoreRepo) List(_ context.Context) ([]*entity.FranchiseStore, error) {
	var out []*entity.FranchiseStore
	err := r.read(func(d *dataset) error {
		out = listRows(d.stores, nil, same[entity.FranchiseStore])
		return nil
	})
	return out, err
}

func (r FranchiseStoreRepo) Count(_ context.Context) (int, error) {
	n := 0
	err := r.read(func(d *dataset) error { n = len(d.stores); return nil })
	return n, err
}

// CentralKitchenRepo cocinas en memoria.
type CentralKitchenRepo struct{ view }

func kitchenKey(k *entity.CentralKitchen) string { return k.ID }

func (r CentralKitchenRepo) Create(_ context.Context, k *entity.CentralKitchen) error {
	return r.write(func(d *dataset) error { return insertRow(&d.kitchens, k, kitchenKey, same[entity.CentralKitchen]) })
}

func (r CentralKitchenRepo) GetByID(_ context.Context, id string) (*entity.CentralKitchen, error) {
	var out *entity.CentralKitchen
	err := r.read(func(d *dataset) error {
		out = getRow(d.kitchens, id, kitchenKey, same[entity.CentralKitchen])
		return nil
	})
	return out, err
}

func (r CentralKitchenRepo) Update(_ context.Context, k *entity.CentralKitchen) error {
	return r.write(func(d *dataset) error { return updateRow(d.kitchens, k, kitchenKey, same[entity.CentralKitchen]) })
}

func (r CentralKitchenRepo) Delete(_ context.Context, id string) error {
	return r.write(func(d *dataset) error { return deleteRow(&d.kitchens, id, kitchenKey) })
}

func (r CentralKitchenRepo) List(_ context.Context) ([]*entity.CentralKitchen, error) {
	var out []*entity.CentralKitchen
	err := r.read(func(d *dataset) error {
		out = listRows(d.kitchens, nil, same[entity.CentralKitchen])
		return nil
	})
	return out, err
}
