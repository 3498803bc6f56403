package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
)

var (
	_ repository.UserRepository            = UserRepo{}
	_ repository.FranchiseStoreRepository  = StoreRepo{}
	_ repository.CentralKitchenRepository  = KitchenRepo{}
	_ repository.ProductTypeRepository     = ProductTypeRepo{}
	_ repository.ProductRepository         = ProductRepo{}
	_ repository.IngredientRepository      = IngredientRepo{}
	_ repository.StockMovementRepository   = MovementRepo{}
	_ repository.RecipeRepository          = RecipeRepo{}
	_ repository.OrderRepository           = OrderRepo{}
	_ repository.ShipmentRepository        = ShipmentRepo{}
	_ repository.ProductionPlanRepository  = PlanRepo{}
	_ repository.ProductionBatchRepository = BatchRepo{}
)

// NewRepos arma los repositorios remotos sobre c.
func NewRepos(c *Client) repository.Repos {
	return repository.Repos{
		Users:        UserRepo{resource[userWire]{c, "/users"}},
		Stores:       StoreRepo{resource[storeWire]{c, "/franchise-stores"}},
		Kitchens:     KitchenRepo{resource[kitchenWire]{c, "/central-kitchens"}},
		ProductTypes: ProductTypeRepo{resource[productTypeWire]{c, "/product-types"}},
		Products:     ProductRepo{resource[productWire]{c, "/products"}},
		Ingredients:  IngredientRepo{resource[ingredientWire]{c, "/inventory/ingredients"}},
		Movements:    MovementRepo{resource[movementWire]{c, "/inventory/movements"}},
		Recipes:      RecipeRepo{resource[recipeWire]{c, "/recipes"}},
		Orders:       OrderRepo{resource[orderWire]{c, "/orders"}},
		Shipments:    ShipmentRepo{resource[shipmentWire]{c, "/shipments"}},
		Plans:        PlanRepo{resource[planWire]{c, "/production/plans"}},
		Batches:      BatchRepo{resource[batchWire]{c, "/production/batches"}},
	}
}

func unsupported(what string, t repository.Transition) error {
	return fmt.Errorf("%w: el backend no expone %q para %s", domain.ErrInvalidInput, t, what)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// UserRepo /users.
type UserRepo struct{ r resource[userWire] }

func (u UserRepo) Create(ctx context.Context, user *entity.User) error {
	return u.r.create(ctx, toUserWire(user))
}

func (u UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	w, err := u.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

// GetByUsername filtra en el backend y confirma la coincidencia sin mayúsculas.
func (u UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	ws, err := u.r.list(ctx, query("username", username))
	if err != nil {
		return nil, err
	}
	for _, w := range ws {
		if strings.EqualFold(w.UserName, username) {
			return w.entity(), nil
		}
	}
	return nil, nil
}

func (u UserRepo) Update(ctx context.Context, user *entity.User) error {
	return u.r.update(ctx, user.ID, toUserWire(user))
}

func (u UserRepo) Delete(ctx context.Context, id string) error { return u.r.remove(ctx, id) }

func (u UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	ws, err := u.r.list(ctx, query("role", string(f.Role), "status", f.Status))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, userWire.entity)
	// El backend puede ignorar los filtros.
	kept := out[:0]
	for _, x := range out {
		if (f.Role == "" || x.Role == f.Role) && (f.Status == "" || x.Status == f.Status) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

// ── Tiendas y cocinas ─────────────────────────────────────────────────────────

// StoreRepo /franchise-stores.
type StoreRepo struct{ r resource[storeWire] }

func (s StoreRepo) Create(ctx context.Context, st *entity.FranchiseStore) error {
	return s.r.create(ctx, toStoreWire(st))
}

func (s StoreRepo) GetByID(ctx context.Context, id string) (*entity.FranchiseStore, error) {
	w, err := s.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (s StoreRepo) Update(ctx context.Context, st *entity.FranchiseStore) error {
	return s.r.update(ctx, st.ID, toStoreWire(st))
}

func (s StoreRepo) Delete(ctx context.Context, id string) error { return s.r.remove(ctx, id) }

func (s StoreRepo) List(ctx context.Context) ([]*entity.FranchiseStore, error) {
	ws, err := s.r.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, storeWire.entity), nil
}

func (s StoreRepo) Count(ctx context.Context) (int, error) { return s.r.count(ctx) }

// KitchenRepo /central-kitchens.
type KitchenRepo struct{ r resource[kitchenWire] }

func (k KitchenRepo) Create(ctx context.Context, kit *entity.CentralKitchen) error {
	return k.r.create(ctx, toKitchenWire(kit))
}

func (k KitchenRepo) GetByID(ctx context.Context, id string) (*entity.CentralKitchen, error) {
	w, err := k.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (k KitchenRepo) Update(ctx context.Context, kit *entity.CentralKitchen) error {
	return k.r.update(ctx, kit.ID, toKitchenWire(kit))
}

func (k KitchenRepo) Delete(ctx context.Context, id string) error { return k.r.remove(ctx, id) }

func (k KitchenRepo) List(ctx context.Context) ([]*entity.CentralKitchen, error) {
	ws, err := k.r.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, kitchenWire.entity), nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// ProductTypeRepo /product-types.
type ProductTypeRepo struct{ r resource[productTypeWire] }

func (p ProductTypeRepo) Create(ctx context.Context, t *entity.ProductType) error {
	return p.r.create(ctx, toProductTypeWire(t))
}

func (p ProductTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProductType, error) {
	w, err := p.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (p ProductTypeRepo) Update(ctx context.Context, t *entity.ProductType) error {
	return p.r.update(ctx, t.ID, toProductTypeWire(t))
}

func (p ProductTypeRepo) Delete(ctx context.Context, id string) error { return p.r.remove(ctx, id) }

func (p ProductTypeRepo) List(ctx context.Context) ([]*entity.ProductType, error) {
	ws, err := p.r.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, productTypeWire.entity), nil
}

// ProductRepo /products.
type ProductRepo struct{ r resource[productWire] }

func (p ProductRepo) Create(ctx context.Context, prod *entity.Product) error {
	return p.r.create(ctx, toProductWire(prod))
}

func (p ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	w, err := p.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (p ProductRepo) Update(ctx context.Context, prod *entity.Product) error {
	return p.r.update(ctx, prod.ID, toProductWire(prod))
}

// SetStock PATCH /inventory/products/:id/stock {quantity}.
func (p ProductRepo) SetStock(ctx context.Context, prod *entity.Product) error {
	return p.r.c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/inventory/products/" + url.PathEscape(prod.ID) + "/stock",
		body:   map[string]int{"quantity": prod.Quantity},
	}, nil)
}

func (p ProductRepo) Delete(ctx context.Context, id string) error { return p.r.remove(ctx, id) }

func (p ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	ws, err := p.r.list(ctx, query("productTypeId", f.ProductTypeID, "status", f.Status))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, productWire.entity)
	kept := out[:0]
	for _, x := range out {
		if (f.ProductTypeID == "" || x.ProductTypeID == f.ProductTypeID) && (f.Status == "" || x.Status == f.Status) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (p ProductRepo) Count(ctx context.Context) (int, error) { return p.r.count(ctx) }

// ── Inventario ────────────────────────────────────────────────────────────────

// IngredientRepo /inventory/ingredients.
type IngredientRepo struct{ r resource[ingredientWire] }

func (i IngredientRepo) Create(ctx context.Context, ing *entity.Ingredient) error {
	return i.r.create(ctx, toIngredientWire(ing))
}

func (i IngredientRepo) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	w, err := i.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (i IngredientRepo) Update(ctx context.Context, ing *entity.Ingredient) error {
	return i.r.patch(ctx, ing.ID, toIngredientWire(ing))
}

func (i IngredientRepo) Delete(ctx context.Context, id string) error { return i.r.remove(ctx, id) }

func (i IngredientRepo) List(ctx context.Context) ([]*entity.Ingredient, error) {
	ws, err := i.r.list(ctx, nil)
	if err != nil {
		return nil, err
	}
	return mapAll(ws, ingredientWire.entity), nil
}

func (i IngredientRepo) Count(ctx context.Context) (int, error) { return i.r.count(ctx) }

// MovementRepo /inventory/movements, solo lectura.
type MovementRepo struct{ r resource[movementWire] }

// Create no escribe: el backend registra el movimiento al aplicar el ajuste.
func (m MovementRepo) Create(context.Context, *entity.StockMovement) error { return nil }

func (m MovementRepo) List(ctx context.Context, itemID string, limit int) ([]*entity.StockMovement, error) {
	q := query("itemId", itemID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	ws, err := m.r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, movementWire.entity)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// RecipeRepo /recipes.
type RecipeRepo struct{ r resource[recipeWire] }

func (rr RecipeRepo) Create(ctx context.Context, rec *entity.Recipe) error {
	return rr.r.create(ctx, toRecipeWire(rec))
}

func (rr RecipeRepo) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	w, err := rr.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (rr RecipeRepo) Update(ctx context.Context, rec *entity.Recipe) error {
	return rr.r.update(ctx, rec.ID, toRecipeWire(rec))
}

func (rr RecipeRepo) Delete(ctx context.Context, id string) error { return rr.r.remove(ctx, id) }

func (rr RecipeRepo) List(ctx context.Context, category string) ([]*entity.Recipe, error) {
	ws, err := rr.r.list(ctx, query("category", category))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, recipeWire.entity)
	kept := out[:0]
	for _, x := range out {
		if category == "" || strings.EqualFold(x.Category, category) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (rr RecipeRepo) Count(ctx context.Context) (int, error) { return rr.r.count(ctx) }

// ── Pedidos y envíos ──────────────────────────────────────────────────────────

// OrderRepo /orders.
type OrderRepo struct{ r resource[orderWire] }

func (o OrderRepo) Create(ctx context.Context, ord *entity.Order) error {
	return o.r.create(ctx, toOrderWire(ord))
}

func (o OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	w, err := o.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

// Update envía el pedido completo; el backend expone además PATCH /orders/:id/status,
// que no alcanza para las líneas.
func (o OrderRepo) Update(ctx context.Context, ord *entity.Order) error {
	return o.r.update(ctx, ord.ID, toOrderWire(ord))
}

// Transition POST /orders/:id/process|ship|deliver.
func (o OrderRepo) Transition(ctx context.Context, ord *entity.Order, t repository.Transition) error {
	switch t {
	case repository.OrderProcess, repository.OrderShip, repository.OrderDeliver:
		return o.r.action(ctx, ord.ID, string(t), nil)
	}
	return unsupported("pedidos", t)
}

func (o OrderRepo) Delete(ctx context.Context, id string) error { return o.r.remove(ctx, id) }

func (o OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	ws, err := o.r.list(ctx, query("status", string(f.Status), "storeId", f.StoreID))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, orderWire.entity)
	kept := out[:0]
	for _, x := range out {
		if (f.Status == "" || x.Status == f.Status) && (f.StoreID == "" || x.StoreID == f.StoreID) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (o OrderRepo) Count(ctx context.Context) (int, error) { return o.r.count(ctx) }

// ShipmentRepo /shipments.
type ShipmentRepo struct{ r resource[shipmentWire] }

// Create adopta el envío que el backend generó en POST /orders/:id/ship; solo si no
// existe lo crea.
func (s ShipmentRepo) Create(ctx context.Context, sh *entity.Shipment) error {
	if sh.OrderID != "" {
		existing, err := s.byOrder(ctx, sh.OrderID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		for _, w := range existing {
			if entity.ShipmentStatus(w.DeliveryStatus) == entity.ShipmentDelivered || w.ID == "" {
				continue
			}
			sh.ID = w.ID
			if w.ShipmentID != "" {
				sh.Code = w.ShipmentID
			}
			return nil
		}
	}
	return s.r.create(ctx, toShipmentWire(sh))
}

func (s ShipmentRepo) byOrder(ctx context.Context, orderID string) ([]shipmentWire, error) {
	var ws []shipmentWire
	err := s.r.c.do(ctx, request{method: http.MethodGet, path: "/orders/" + url.PathEscape(orderID) + "/shipments"}, &ws)
	return ws, err
}

func (s ShipmentRepo) GetByID(ctx context.Context, id string) (*entity.Shipment, error) {
	w, err := s.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (s ShipmentRepo) Update(ctx context.Context, sh *entity.Shipment) error {
	return s.r.update(ctx, sh.ID, toShipmentWire(sh))
}

// Transition: despachar es PATCH /shipments/:id/status; entregar, POST /shipments/:id/delivered.
func (s ShipmentRepo) Transition(ctx context.Context, sh *entity.Shipment, t repository.Transition) error {
	switch t {
	case repository.ShipmentDispatch:
		return s.r.setStatus(ctx, sh.ID, string(sh.Status))
	case repository.ShipmentDelivered:
		return s.r.action(ctx, sh.ID, "delivered", nil)
	}
	return unsupported("envíos", t)
}

// List con OrderID usa /orders/:id/shipments.
func (s ShipmentRepo) List(ctx context.Context, f repository.ShipmentFilter) ([]*entity.Shipment, error) {
	var ws []shipmentWire
	var err error
	if f.OrderID != "" {
		ws, err = s.byOrder(ctx, f.OrderID)
	} else {
		ws, err = s.r.list(ctx, query("status", string(f.Status)))
	}
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, shipmentWire.entity)
	kept := out[:0]
	for _, x := range out {
		if (f.Status == "" || x.Status == f.Status) && (f.OrderID == "" || x.OrderID == f.OrderID) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (s ShipmentRepo) Count(ctx context.Context) (int, error) { return s.r.count(ctx) }

// ── Producción ────────────────────────────────────────────────────────────────

// PlanRepo /production/plans.
type PlanRepo struct{ r resource[planWire] }

func (p PlanRepo) Create(ctx context.Context, plan *entity.ProductionPlan) error {
	return p.r.create(ctx, toPlanWire(plan))
}

func (p PlanRepo) GetByID(ctx context.Context, id string) (*entity.ProductionPlan, error) {
	w, err := p.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (p PlanRepo) Update(ctx context.Context, plan *entity.ProductionPlan) error {
	return p.r.update(ctx, plan.ID, toPlanWire(plan))
}

// Transition PATCH /production/plans/:id/status.
func (p PlanRepo) Transition(ctx context.Context, plan *entity.ProductionPlan, t repository.Transition) error {
	switch t {
	case repository.PlanStart, repository.PlanComplete:
		return p.r.setStatus(ctx, plan.ID, string(plan.Status))
	}
	return unsupported("planes", t)
}

func (p PlanRepo) Delete(ctx context.Context, id string) error { return p.r.remove(ctx, id) }

func (p PlanRepo) List(ctx context.Context, status entity.PlanStatus) ([]*entity.ProductionPlan, error) {
	ws, err := p.r.list(ctx, query("status", string(status)))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, planWire.entity)
	kept := out[:0]
	for _, x := range out {
		if status == "" || x.Status == status {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (p PlanRepo) Count(ctx context.Context) (int, error) { return p.r.count(ctx) }

// BatchRepo /production/batches.
type BatchRepo struct{ r resource[batchWire] }

func (b BatchRepo) Create(ctx context.Context, batch *entity.ProductionBatch) error {
	return b.r.create(ctx, toBatchWire(batch))
}

func (b BatchRepo) GetByID(ctx context.Context, id string) (*entity.ProductionBatch, error) {
	w, err := b.r.get(ctx, id)
	if err != nil || w == nil {
		return nil, err
	}
	return w.entity(), nil
}

func (b BatchRepo) Update(ctx context.Context, batch *entity.ProductionBatch) error {
	return b.r.update(ctx, batch.ID, toBatchWire(batch))
}

// Transition usa /complete y /quality-check {passed}; enviar a control sin resultado es
// PATCH /production/batches/:id/status.
func (b BatchRepo) Transition(ctx context.Context, batch *entity.ProductionBatch, t repository.Transition) error {
	switch t {
	case repository.BatchComplete:
		return b.r.action(ctx, batch.ID, "complete", nil)
	case repository.BatchQualityPassed, repository.BatchQualityFailed:
		return b.r.action(ctx, batch.ID, "quality-check", map[string]bool{"passed": t == repository.BatchQualityPassed})
	case repository.BatchSendToQC:
		return b.r.setStatus(ctx, batch.ID, string(entity.BatchQualityCheck))
	}
	return unsupported("lotes", t)
}

func (b BatchRepo) List(ctx context.Context, f repository.BatchFilter) ([]*entity.ProductionBatch, error) {
	ws, err := b.r.list(ctx, query("status", string(f.Status), "planId", f.PlanID))
	if err != nil {
		return nil, err
	}
	out := mapAll(ws, batchWire.entity)
	kept := out[:0]
	for _, x := range out {
		if (f.Status == "" || x.Status == f.Status) && (f.PlanID == "" || x.PlanID == f.PlanID) {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

func (b BatchRepo) Count(ctx context.Context) (int, error) { return b.r.count(ctx) }
