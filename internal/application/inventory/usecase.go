// Package inventory gestiona el stock de ingredientes y de producto terminado de la cocina
// central: entradas, salidas, conteos, stock bajo y ubicaciones.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/application/dto"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/inventory"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/workflow"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
	"github.com/jhoicas/CentralKitchen-api/pkg/validator"
)

// StockUseCase registra movimientos de stock de forma transaccional: el ítem y su
// movimiento se escriben juntos o ninguno.
type StockUseCase struct {
	repos  repository.Repos
	tx     ports.TxRunner
	events ports.EventPublisher
	log    *logger.Logger
	now    func() time.Time
}

// NewStockUseCase construye el caso de uso. events y log pueden ser nil.
func NewStockUseCase(repos repository.Repos, tx ports.TxRunner, events ports.EventPublisher, log *logger.Logger) *StockUseCase {
	if events == nil {
		events = ports.NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{repos: repos, tx: tx, events: events, log: log.Named("inventory"), now: time.Now}
}

// CreateIngredient alta de ingrediente con código ING-nnn.
func (uc *StockUseCase) CreateIngredient(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unitCost no puede ser negativo", domain.ErrInvalidInput)
	}
	ing := &entity.Ingredient{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Unit:             in.Unit,
		Quantity:         in.Quantity,
		MinStock:         in.MinStock,
		Location:         in.Location,
		StorageCondition: in.StorageCondition,
		UnitCost:         in.UnitCost,
		UpdatedAt:        uc.now(),
	}
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		n, err := r.Ingredients.Count(ctx)
		if err != nil {
			return err
		}
		ing.Code = workflow.NextIngredientCode(n)
		return r.Ingredients.Create(ctx, ing)
	})
	if err != nil {
		return nil, err
	}
	return ToIngredientResponse(ing), nil
}

// GetIngredient ingrediente por ID.
func (uc *StockUseCase) GetIngredient(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := getIngredient(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	return ToIngredientResponse(ing), nil
}

// UpdateIngredient cambia datos de catálogo; la cantidad solo cambia con movimientos.
func (uc *StockUseCase) UpdateIngredient(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	ing, err := getIngredient(ctx, uc.repos, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		ing.Name = *in.Name
	}
	if in.Unit != nil {
		ing.Unit = *in.Unit
	}
	if in.MinStock != nil {
		ing.MinStock = *in.MinStock
	}
	if in.Location != nil {
		ing.Location = *in.Location
	}
	if in.StorageCondition != nil {
		ing.StorageCondition = *in.StorageCondition
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: unitCost no puede ser negativo", domain.ErrInvalidInput)
		}
		ing.UnitCost = *in.UnitCost
	}
	ing.UpdatedAt = uc.now()
	if err := uc.repos.Ingredients.Update(ctx, ing); err != nil {
		return nil, err
	}
	return ToIngredientResponse(ing), nil
}

// ListIngredients ingredientes, opcionalmente de una ubicación o solo los bajos.
func (uc *StockUseCase) ListIngredients(ctx context.Context, location string, lowOnly bool) ([]dto.IngredientResponse, error) {
	list, err := uc.repos.Ingredients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		if location != "" && ing.Location != location {
			continue
		}
		if lowOnly && !workflow.IsLow(ing) {
			continue
		}
		out = append(out, *ToIngredientResponse(ing))
	}
	return out, nil
}

// DeleteIngredient elimina un ingrediente.
func (uc *StockUseCase) DeleteIngredient(ctx context.Context, id string) error {
	return uc.repos.Ingredients.Delete(ctx, id)
}

// StockIn entrada de ingrediente. Con unitCost recalcula el costo promedio ponderado.
func (uc *StockUseCase) StockIn(ctx context.Context, actor session.Identity, id string, in dto.StockAdjustRequest) (*dto.IngredientResponse, error) {
	return uc.adjustIngredient(ctx, FromRequest(actor, entity.ItemKindIngredient, id, entity.MovementTypeIn, in, uc.now()))
}

// StockOut salida de ingrediente. Todo o nada: sin stock suficiente no cambia nada.
func (uc *StockUseCase) StockOut(ctx context.Context, actor session.Identity, id string, in dto.StockAdjustRequest) (*dto.IngredientResponse, error) {
	return uc.adjustIngredient(ctx, FromRequest(actor, entity.ItemKindIngredient, id, entity.MovementTypeOut, in, uc.now()))
}

func (uc *StockUseCase) adjustIngredient(ctx context.Context, input MovementInput) (*dto.IngredientResponse, error) {
	if input.UnitCost != nil && input.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unitCost no puede ser negativo", domain.ErrInvalidInput)
	}
	var (
		ing *entity.Ingredient
		mov *entity.StockMovement
	)
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		cur, err := getIngredient(ctx, r, input.ItemID)
		if err != nil {
			return err
		}
		before := cur.Quantity
		switch input.Type {
		case entity.MovementTypeIn:
			if err := workflow.StockIn(cur, input.Quantity); err != nil {
				return err
			}
			if input.UnitCost != nil {
				cur.UnitCost = inventory.WeightedAverageCost(
					decimal.NewFromInt(int64(before)), cur.UnitCost,
					decimal.NewFromInt(int64(input.Quantity)), *input.UnitCost,
				).Round(4)
			}
		case entity.MovementTypeOut:
			if err := workflow.StockOut(cur, input.Quantity); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, input.Type)
		}
		cur.UpdatedAt = input.At
		if err := r.Ingredients.Update(ctx, cur); err != nil {
			return err
		}
		m := input.movement(before, cur.Quantity)
		if err := r.Movements.Create(ctx, m); err != nil {
			return err
		}
		ing, mov = cur, m
		return nil
	})
	if err != nil {
		return nil, err
	}
	status := workflow.IngredientStatus(ing)
	uc.log.Info().Str("ingredient", ing.Code).Str("type", mov.Type).Int("quantity", mov.Quantity).Int("after", mov.After).Msg("movimiento de stock")
	uc.publish(ctx, input.Actor, eventFor(mov.Type), ing.ID, ing.Code, status)
	return ToIngredientResponse(ing), nil
}

// ListProductStock producto terminado con su clasificación de stock.
func (uc *StockUseCase) ListProductStock(ctx context.Context, location string) ([]dto.ProductResponse, error) {
	list, err := uc.repos.Products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if location != "" && p.Location != location {
			continue
		}
		out = append(out, *usecase.ToProductResponse(p))
	}
	return out, nil
}

// SetProductStock conteo directo del stock de producto terminado.
func (uc *StockUseCase) SetProductStock(ctx context.Context, actor session.Identity, id string, in dto.SetStockRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	input := MovementInput{Actor: actor, Kind: entity.ItemKindProduct, ItemID: id, Type: entity.MovementTypeSet, Quantity: in.Quantity, At: uc.now()}
	var product *entity.Product
	err := uc.tx.Run(ctx, func(r repository.Repos) error {
		p, err := r.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound("producto", id)
		}
		before := p.Quantity
		p.Quantity = in.Quantity
		p.UpdatedAt = input.At
		if err := r.Products.SetStock(ctx, p); err != nil {
			return err
		}
		product = p
		return r.Movements.Create(ctx, input.movement(before, p.Quantity))
	})
	if err != nil {
		return nil, err
	}
	status := workflow.ClassifyProduct(product.Quantity, product.MinStock)
	uc.log.Info().Str("product", product.Code).Int("quantity", product.Quantity).Str("status", status).Msg("conteo de producto")
	uc.publish(ctx, actor, ports.EventStockSet, product.ID, product.Code, status)
	return usecase.ToProductResponse(product), nil
}

// Movements historial más reciente primero; itemID vacío lista todos.
func (uc *StockUseCase) Movements(ctx context.Context, itemID string, limit int) ([]dto.StockMovementResponse, error) {
	list, err := uc.repos.Movements.List(ctx, itemID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:        m.ID,
			ItemKind:  m.ItemKind,
			ItemID:    m.ItemID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Before:    m.Before,
			After:     m.After,
			Reference: m.Reference,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (uc *StockUseCase) publish(ctx context.Context, actor session.Identity, typ, id, code, status string) {
	uc.events.Publish(ctx, ports.Event{Type: typ, EntityID: id, Code: code, Status: status, Actor: actor.Username, At: uc.now()})
}

func eventFor(movementType string) string {
	switch movementType {
	case entity.MovementTypeIn:
		return ports.EventStockIn
	case entity.MovementTypeOut:
		return ports.EventStockOut
	default:
		return ports.EventStockSet
	}
}

func getIngredient(ctx context.Context, r repository.Repos, id string) (*entity.Ingredient, error) {
	ing, err := r.Ingredients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, notFound("ingrediente", id)
	}
	return ing, nil
}

func validate(in interface{}) error {
	if errs := validator.ValidateStruct(in); errs != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	return nil
}

func notFound(what, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, id)
}

// ToIngredientResponse mapea el ingrediente con su estado de stock.
func ToIngredientResponse(ing *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:               ing.ID,
		Code:             ing.Code,
		Name:             ing.Name,
		Unit:             ing.Unit,
		Quantity:         ing.Quantity,
		MinStock:         ing.MinStock,
		Location:         ing.Location,
		StorageCondition: ing.StorageCondition,
		UnitCost:         ing.UnitCost,
		Status:           workflow.IngredientStatus(ing),
		IsLow:            workflow.IsLow(ing),
		UpdatedAt:        ing.UpdatedAt,
	}
}
