package remote

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
)

// Formatos JSON del backend. Los nombres siguen los modelos que expone su API.

type loginWire struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type userWire struct {
	ID           string    `json:"id"`
	UserName     string    `json:"userName"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	StoreID      string    `json:"storeId,omitempty"`
	StoreName    string    `json:"storeName,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toUserWire(u *entity.User) userWire {
	return userWire{ID: u.ID, UserName: u.Username, Name: u.Name, Email: u.Email, Role: string(u.Role),
		Status: u.Status, StoreID: u.StoreID, StoreName: u.StoreName, PasswordHash: u.PasswordHash,
		CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func (w userWire) entity() *entity.User {
	role, ok := entity.ParseRole(w.Role)
	if !ok {
		role = entity.Role(w.Role)
	}
	status := w.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	return &entity.User{ID: w.ID, Username: w.UserName, Name: w.Name, Email: w.Email, Role: role,
		Status: status, StoreID: w.StoreID, StoreName: w.StoreName, PasswordHash: w.PasswordHash,
		CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type storeWire struct {
	StoreID     string    `json:"storeId"`
	Code        string    `json:"code"`
	KitchenID   string    `json:"kitchenId"`
	KitchenName string    `json:"kitchenName,omitempty"`
	StoreName   string    `json:"storeName"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toStoreWire(s *entity.FranchiseStore) storeWire {
	return storeWire{StoreID: s.ID, Code: s.Code, KitchenID: s.KitchenID, KitchenName: s.KitchenName,
		StoreName: s.Name, Address: s.Address, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func (w storeWire) entity() *entity.FranchiseStore {
	return &entity.FranchiseStore{ID: w.StoreID, Code: w.Code, KitchenID: w.KitchenID, KitchenName: w.KitchenName,
		Name: w.StoreName, Address: w.Address, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type kitchenWire struct {
	CentralKitchenID string    `json:"centralKitchenId"`
	Name             string    `json:"name"`
	Address          string    `json:"address,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Status           string    `json:"status,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toKitchenWire(k *entity.CentralKitchen) kitchenWire {
	return kitchenWire{CentralKitchenID: k.ID, Name: k.Name, Address: k.Address, Phone: k.Phone,
		Status: k.Status, CreatedAt: k.CreatedAt, UpdatedAt: k.UpdatedAt}
}

func (w kitchenWire) entity() *entity.CentralKitchen {
	return &entity.CentralKitchen{ID: w.CentralKitchenID, Name: w.Name, Address: w.Address, Phone: w.Phone,
		Status: w.Status, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type productTypeWire struct {
	ProductTypeID    string    `json:"productTypeId"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	StorageCondition string    `json:"storageCondition,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func toProductTypeWire(t *entity.ProductType) productTypeWire {
	return productTypeWire{ProductTypeID: t.ID, Name: t.Name, Description: t.Description,
		StorageCondition: t.StorageCondition, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func (w productTypeWire) entity() *entity.ProductType {
	return &entity.ProductType{ID: w.ProductTypeID, Name: w.Name, Description: w.Description,
		StorageCondition: w.StorageCondition, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type productWire struct {
	ProductID     string    `json:"productId"`
	Code          string    `json:"code"`
	ProductTypeID string    `json:"productTypeId,omitempty"`
	ProductName   string    `json:"productName"`
	Unit          string    `json:"unit"`
	Status        string    `json:"status"`
	Quantity      int       `json:"quantity"`
	MinStock      int       `json:"minStock"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toProductWire(p *entity.Product) productWire {
	return productWire{ProductID: p.ID, Code: p.Code, ProductTypeID: p.ProductTypeID, ProductName: p.Name,
		Unit: p.Unit, Status: p.Status, Quantity: p.Quantity, MinStock: p.MinStock, Location: p.Location,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

func (w productWire) entity() *entity.Product {
	return &entity.Product{ID: w.ProductID, Code: w.Code, ProductTypeID: w.ProductTypeID, Name: w.ProductName,
		Unit: w.Unit, Status: w.Status, Quantity: w.Quantity, MinStock: w.MinStock, Location: w.Location,
		CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type ingredientWire struct {
	ID               string          `json:"id"`
	IngredientID     string          `json:"ingredientId"`
	Name             string          `json:"name"`
	Quantity         int             `json:"quantity"`
	Unit             string          `json:"unit"`
	Location         string          `json:"location"`
	ReorderLevel     int             `json:"reorderLevel"`
	StorageCondition string          `json:"storageCondition,omitempty"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func toIngredientWire(i *entity.Ingredient) ingredientWire {
	return ingredientWire{ID: i.ID, IngredientID: i.Code, Name: i.Name, Quantity: i.Quantity, Unit: i.Unit,
		Location: i.Location, ReorderLevel: i.MinStock, StorageCondition: i.StorageCondition,
		UnitCost: i.UnitCost, UpdatedAt: i.UpdatedAt}
}

func (w ingredientWire) entity() *entity.Ingredient {
	return &entity.Ingredient{ID: w.ID, Code: w.IngredientID, Name: w.Name, Quantity: w.Quantity, Unit: w.Unit,
		Location: w.Location, MinStock: w.ReorderLevel, StorageCondition: w.StorageCondition,
		UnitCost: w.UnitCost, UpdatedAt: w.UpdatedAt}
}

type movementWire struct {
	ID        string    `json:"id"`
	ItemKind  string    `json:"itemKind"`
	ItemID    string    `json:"itemId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Before    int       `json:"before"`
	After     int       `json:"after"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

func (w movementWire) entity() *entity.StockMovement {
	return &entity.StockMovement{ID: w.ID, ItemKind: w.ItemKind, ItemID: w.ItemID, Type: w.Type, Quantity: w.Quantity,
		Before: w.Before, After: w.After, Reference: w.Reference, CreatedAt: w.CreatedAt, CreatedBy: w.CreatedBy}
}

type recipeIngredientWire struct {
	IngredientID   string          `json:"ingredientId"`
	IngredientName string          `json:"ingredientName"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

type recipeWire struct {
	ID           string                 `json:"id"`
	RecipeID     string                 `json:"recipeId"`
	Name         string                 `json:"name"`
	Category     string                 `json:"category"`
	ProductID    string                 `json:"productId,omitempty"`
	ServingSize  int                    `json:"servingSize"`
	PrepTime     int                    `json:"prepTime"`
	Instructions string                 `json:"instructions"`
	Ingredients  []recipeIngredientWire `json:"ingredients"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func toRecipeWire(r *entity.Recipe) recipeWire {
	w := recipeWire{ID: r.ID, RecipeID: r.Code, Name: r.Name, Category: r.Category, ProductID: r.ProductID,
		ServingSize: r.Servings, PrepTime: r.PrepMinutes, Instructions: r.Instructions,
		Ingredients: make([]recipeIngredientWire, 0, len(r.Ingredients)), CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
	for _, l := range r.Ingredients {
		w.Ingredients = append(w.Ingredients, recipeIngredientWire{IngredientID: l.IngredientID,
			IngredientName: l.Name, Quantity: l.Quantity, Unit: l.Unit})
	}
	return w
}

func (w recipeWire) entity() *entity.Recipe {
	r := &entity.Recipe{ID: w.ID, Code: w.RecipeID, Name: w.Name, Category: w.Category, ProductID: w.ProductID,
		Servings: w.ServingSize, PrepMinutes: w.PrepTime, Instructions: w.Instructions,
		Ingredients: make([]entity.RecipeIngredient, 0, len(w.Ingredients)), CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
	for _, l := range w.Ingredients {
		r.Ingredients = append(r.Ingredients, entity.RecipeIngredient{IngredientID: l.IngredientID,
			Name: l.IngredientName, Quantity: l.Quantity, Unit: l.Unit})
	}
	return r
}

type orderItemWire struct {
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type orderWire struct {
	ID             string          `json:"id"`
	StoreOrderID   string          `json:"storeOrderId"`
	StoreID        string          `json:"storeId,omitempty"`
	FranchiseStore string          `json:"franchiseStore"`
	OrderDate      time.Time       `json:"orderDate"`
	DeliveryDate   time.Time       `json:"deliveryDate"`
	TotalQuantity  int             `json:"totalQuantity"`
	Items          int             `json:"items"`
	Status         string          `json:"status"`
	Lines          []orderItemWire `json:"lines,omitempty"`
	CreatedBy      string          `json:"createdBy,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func toOrderWire(o *entity.Order) orderWire {
	w := orderWire{ID: o.ID, StoreOrderID: o.Code, StoreID: o.StoreID, FranchiseStore: o.StoreName,
		OrderDate: o.OrderDate, DeliveryDate: o.DeliveryDate, TotalQuantity: o.TotalQuantity, Items: o.ItemCount,
		Status: string(o.Status), CreatedBy: o.CreatedBy, CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt}
	for _, it := range o.Items {
		w.Lines = append(w.Lines, orderItemWire{ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity})
	}
	return w
}

func (w orderWire) entity() *entity.Order {
	o := &entity.Order{ID: w.ID, Code: w.StoreOrderID, StoreID: w.StoreID, StoreName: w.FranchiseStore,
		OrderDate: w.OrderDate, DeliveryDate: w.DeliveryDate, TotalQuantity: w.TotalQuantity, ItemCount: w.Items,
		Status: entity.OrderStatus(w.Status), CreatedBy: w.CreatedBy, CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
	for _, l := range w.Lines {
		o.Items = append(o.Items, entity.OrderItem{ProductID: l.ProductID, ProductName: l.ProductName, Quantity: l.Quantity})
	}
	return o
}

type shipmentWire struct {
	ID             string     `json:"id"`
	ShipmentID     string     `json:"shipmentId"`
	OrderID        string     `json:"orderId"`
	StoreOrderID   string     `json:"storeOrderId"`
	StoreID        string     `json:"storeId,omitempty"`
	FranchiseStore string     `json:"franchiseStore"`
	DeliveryStatus string     `json:"deliveryStatus"`
	ReceivedDate   *time.Time `json:"receivedDate"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toShipmentWire(s *entity.Shipment) shipmentWire {
	return shipmentWire{ID: s.ID, ShipmentID: s.Code, OrderID: s.OrderID, StoreOrderID: s.OrderCode,
		StoreID: s.StoreID, FranchiseStore: s.StoreName, DeliveryStatus: string(s.Status),
		ReceivedDate: s.ReceivedAt, CreatedAt: s.CreatedAt}
}

func (w shipmentWire) entity() *entity.Shipment {
	return &entity.Shipment{ID: w.ID, Code: w.ShipmentID, OrderID: w.OrderID, OrderCode: w.StoreOrderID,
		StoreID: w.StoreID, StoreName: w.FranchiseStore, Status: entity.ShipmentStatus(w.DeliveryStatus),
		ReceivedAt: w.ReceivedDate, CreatedAt: w.CreatedAt}
}

type planWire struct {
	ID          string    `json:"id"`
	PlanID      string    `json:"planId"`
	ProductName string    `json:"productName"`
	PlanDate    time.Time `json:"planDate"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPlanWire(p *entity.ProductionPlan) planWire {
	return planWire{ID: p.ID, PlanID: p.Code, ProductName: p.ProductName, PlanDate: p.PlannedDate,
		Quantity: p.Quantity, Status: string(p.Status), CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

func (w planWire) entity() *entity.ProductionPlan {
	return &entity.ProductionPlan{ID: w.ID, Code: w.PlanID, ProductName: w.ProductName, PlannedDate: w.PlanDate,
		Quantity: w.Quantity, Status: entity.PlanStatus(w.Status), CreatedAt: w.CreatedAt, UpdatedAt: w.UpdatedAt}
}

type batchWire struct {
	ID          string     `json:"id"`
	BatchID     string     `json:"batchId"`
	PlanID      string     `json:"planId,omitempty"`
	ProductName string     `json:"productName"`
	Quantity    int        `json:"quantity"`
	StartDate   time.Time  `json:"startDate"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Status      string     `json:"status"`
}

func toBatchWire(b *entity.ProductionBatch) batchWire {
	return batchWire{ID: b.ID, BatchID: b.BatchCode, PlanID: b.PlanID, ProductName: b.ProductName,
		Quantity: b.Quantity, StartDate: b.StartedAt, CompletedAt: b.CompletedAt, Status: string(b.Status)}
}

func (w batchWire) entity() *entity.ProductionBatch {
	return &entity.ProductionBatch{ID: w.ID, BatchCode: w.BatchID, PlanID: w.PlanID, ProductName: w.ProductName,
		Quantity: w.Quantity, StartedAt: w.StartDate, CompletedAt: w.CompletedAt, Status: entity.BatchStatus(w.Status)}
}
