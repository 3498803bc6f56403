package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
)

// StoreUseCase casos de uso CRUD para tiendas franquiciadas y cocinas centrales.
type StoreUseCase struct {
	stores   repository.FranchiseStoreRepository
	kitchens repository.CentralKitchenRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(stores repository.FranchiseStoreRepository, kitchens repository.CentralKitchenRepository) *StoreUseCase {
	return &StoreUseCase{stores: stores, kitchens: kitchens}
}

// Create crea una nueva tienda. La cocina, si se indica, debe existir.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	n, err := uc.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	store := &entity.FranchiseStore{
		ID:        uuid.New().String(),
		Code:      workflow.NextStoreCode(n),
		Name:      in.StoreName,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.attachKitchen(ctx, store, in.KitchenID); err != nil {
		return nil, err
	}
	if err := uc.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id string) (*dto.StoreResponse, error) {
	store, err := uc.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Update actualiza una tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	store, err := uc.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.StoreName != nil {
		store.Name = *in.StoreName
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.KitchenID != nil {
		if err := uc.attachKitchen(ctx, store, *in.KitchenID); err != nil {
			return nil, err
		}
	}
	store.UpdatedAt = time.Now()
	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista tiendas.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items, nil
}

// Delete elimina una tienda por ID.
func (uc *StoreUseCase) Delete(ctx context.Context, id string) error {
	return uc.stores.Delete(ctx, id)
}

// CreateKitchen crea una cocina central.
func (uc *StoreUseCase) CreateKitchen(ctx context.Context, in dto.CreateKitchenRequest) (*dto.KitchenResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.KitchenStatusActive
	}
	now := time.Now()
	k := &entity.CentralKitchen{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.kitchens.Create(ctx, k); err != nil {
		return nil, err
	}
	return toKitchenResponse(k), nil
}

// GetKitchen obtiene una cocina por ID.
func (uc *StoreUseCase) GetKitchen(ctx context.Context, id string) (*dto.KitchenResponse, error) {
	k, err := uc.getKitchen(ctx, id)
	if err != nil {
		return nil, err
	}
	return toKitchenResponse(k), nil
}

// UpdateKitchen actualiza una cocina.
func (uc *StoreUseCase) UpdateKitchen(ctx context.Context, id string, in dto.UpdateKitchenRequest) (*dto.KitchenResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	k, err := uc.getKitchen(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		k.Name = *in.Name
	}
	if in.Address != nil {
		k.Address = *in.Address
	}
	if in.Phone != nil {
		k.Phone = *in.Phone
	}
	if in.Status != nil {
		k.Status = *in.Status
	}
	k.UpdatedAt = time.Now()
	if err := uc.kitchens.Update(ctx, k); err != nil {
		return nil, err
	}
	return toKitchenResponse(k), nil
}

// ListKitchens lista cocinas centrales.
func (uc *StoreUseCase) ListKitchens(ctx context.Context) ([]dto.KitchenResponse, error) {
	list, err := uc.kitchens.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KitchenResponse, 0, len(list))
	for _, k := range list {
		items = append(items, *toKitchenResponse(k))
	}
	return items, nil
}

// DeleteKitchen elimina una cocina si ninguna tienda la referencia.
func (uc *StoreUseCase) DeleteKitchen(ctx context.Context, id string) error {
	stores, err := uc.stores.List(ctx)
	if err != nil {
		return err
	}
	for _, s := range stores {
		if s.KitchenID == id {
			return fmt.Errorf("%w: la cocina abastece a %s", domain.ErrConflict, s.Name)
		}
	}
	return uc.kitchens.Delete(ctx, id)
}

func (uc *StoreUseCase) attachKitchen(ctx context.Context, store *entity.FranchiseStore, kitchenID string) error {
	if kitchenID == "" {
		store.KitchenID, store.KitchenName = "", ""
		return nil
	}
	k, err := uc.getKitchen(ctx, kitchenID)
	if err != nil {
		return err
	}
	store.KitchenID, store.KitchenName = k.ID, k.Name
	return nil
}

func (uc *StoreUseCase) getStore(ctx context.Context, id string) (*entity.FranchiseStore, error) {
	s, err := uc.stores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, notFound("tienda", id)
	}
	return s, nil
}

func (uc *StoreUseCase) getKitchen(ctx context.Context, id string) (*entity.CentralKitchen, error) {
	k, err := uc.kitchens.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, notFound("cocina", id)
	}
	return k, nil
}

func toStoreResponse(s *entity.FranchiseStore) *dto.StoreResponse {
	return &dto.StoreResponse{
		StoreID:     s.ID,
		Code:        s.Code,
		KitchenID:   s.KitchenID,
		KitchenName: s.KitchenName,
		StoreName:   s.Name,
		Address:     s.Address,
		CreatedAt:   s.CreatedAt,
	}
}

func toKitchenResponse(k *entity.CentralKitchen) *dto.KitchenResponse {
	return &dto.KitchenResponse{
		CentralKitchenID: k.ID,
		Name:             k.Name,
		Address:          k.Address,
		Phone:            k.Phone,
		Status:           k.Status,
	}
}
