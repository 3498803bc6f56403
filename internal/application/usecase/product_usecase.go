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

// ProductUseCase casos de uso CRUD para productos y tipos de producto.
// El stock de producto terminado se ajusta por inventario, no por Update.
type ProductUseCase struct {
	repo            repository.ProductRepository
	types           repository.ProductTypeRepository
	defaultMinStock int
}

// NewProductUseCase construye el caso de uso. defaultMinStock se aplica a productos creados sin mínimo.
func NewProductUseCase(repo repository.ProductRepository, types repository.ProductTypeRepository, defaultMinStock int) *ProductUseCase {
	return &ProductUseCase{repo: repo, types: types, defaultMinStock: defaultMinStock}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if err := uc.checkType(ctx, in.ProductTypeID); err != nil {
		return nil, err
	}
	n, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.ProductStatusActive
	}
	minStock := uc.defaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          workflow.NextProductCode(n),
		ProductTypeID: in.ProductTypeID,
		Name:          in.ProductName,
		Unit:          in.Unit,
		Status:        status,
		Quantity:      in.Quantity,
		MinStock:      minStock,
		Location:      in.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update actualiza datos de catálogo de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ProductTypeID != nil {
		if err := uc.checkType(ctx, *in.ProductTypeID); err != nil {
			return nil, err
		}
		product.ProductTypeID = *in.ProductTypeID
	}
	if in.ProductName != nil {
		product.Name = *in.ProductName
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// UpdateStatus activa o desactiva un producto.
func (uc *ProductUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	product, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Status = in.Status
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos con filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, typeID, status string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{ProductTypeID: typeID, Status: status})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// CreateType crea un tipo de producto.
func (uc *ProductUseCase) CreateType(ctx context.Context, in dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	pt := &entity.ProductType{
		ID:               uuid.New().String(),
		Name:             in.TypeName,
		Description:      in.Description,
		StorageCondition: in.StorageCondition,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.types.Create(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// GetType obtiene un tipo de producto.
func (uc *ProductUseCase) GetType(ctx context.Context, id string) (*dto.ProductTypeResponse, error) {
	pt, err := uc.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, notFound("tipo de producto", id)
	}
	return toProductTypeResponse(pt), nil
}

// UpdateType actualiza un tipo de producto.
func (uc *ProductUseCase) UpdateType(ctx context.Context, id string, in dto.UpdateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	pt, err := uc.types.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, notFound("tipo de producto", id)
	}
	if in.TypeName != nil {
		pt.Name = *in.TypeName
	}
	if in.Description != nil {
		pt.Description = *in.Description
	}
	if in.StorageCondition != nil {
		pt.StorageCondition = *in.StorageCondition
	}
	pt.UpdatedAt = time.Now()
	if err := uc.types.Update(ctx, pt); err != nil {
		return nil, err
	}
	return toProductTypeResponse(pt), nil
}

// ListTypes lista tipos de producto.
func (uc *ProductUseCase) ListTypes(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	list, err := uc.types.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductTypeResponse, 0, len(list))
	for _, pt := range list {
		items = append(items, *toProductTypeResponse(pt))
	}
	return items, nil
}

// DeleteType elimina un tipo si ningún producto lo usa.
func (uc *ProductUseCase) DeleteType(ctx context.Context, id string) error {
	used, err := uc.repo.List(ctx, repository.ProductFilter{ProductTypeID: id})
	if err != nil {
		return err
	}
	if len(used) > 0 {
		return fmt.Errorf("%w: %d productos usan el tipo", domain.ErrConflict, len(used))
	}
	return uc.types.Delete(ctx, id)
}

func (uc *ProductUseCase) checkType(ctx context.Context, typeID string) error {
	if typeID == "" {
		return nil
	}
	pt, err := uc.types.GetByID(ctx, typeID)
	if err != nil {
		return err
	}
	if pt == nil {
		return notFound("tipo de producto", typeID)
	}
	return nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("producto", id)
	}
	return p, nil
}

// ToProductResponse mapea el producto con su clasificación de stock.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:     p.ID,
		Code:          p.Code,
		ProductTypeID: p.ProductTypeID,
		ProductName:   p.Name,
		Unit:          p.Unit,
		Status:        p.Status,
		Quantity:      p.Quantity,
		MinStock:      p.MinStock,
		Location:      p.Location,
		StockStatus:   workflow.ClassifyProduct(p.Quantity, p.MinStock),
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductTypeResponse(pt *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ProductTypeID:    pt.ID,
		TypeName:         pt.Name,
		Description:      pt.Description,
		StorageCondition: pt.StorageCondition,
	}
}
