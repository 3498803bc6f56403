// Package seed carga los datos de demostración de la consola: usuarios con password igual
// al username, tiendas del distrito, catálogo, inventario, recetas, pedidos y producción.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

// Load inserta el dataset si todavía no existe el usuario admin. Devuelve false si no hizo nada.
func Load(ctx context.Context, tx ports.TxRunner, log *logger.Logger) (bool, error) {
	if log == nil {
		log = logger.Nop()
	}
	seeded := false
	err := tx.Run(ctx, func(r repository.Repos) error {
		existing, err := r.Users.GetByUsername(ctx, "admin")
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		if err := load(ctx, r, time.Now()); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if seeded {
		log.Named("seed").Info().Msg("datos de demostración cargados")
	}
	return seeded, nil
}

func load(ctx context.Context, r repository.Repos, now time.Time) error {
	steps := []func(context.Context, repository.Repos, time.Time) error{
		kitchensAndStores, users, catalog, ingredients, recipes, orders, production,
	}
	for _, step := range steps {
		if err := step(ctx, r, now); err != nil {
			return err
		}
	}
	return nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func at(s string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", s)
	return t
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

const kitchenID = "CK-001"

type storeSeed struct {
	id, name, address string
}

var stores = []storeSeed{
	{"ST-001", "District 1 Store", "123 Nguyen Hue, District 1, HCMC"},
	{"ST-002", "District 2 Store", "456 Hanoi Highway, District 2, HCMC"},
	{"ST-003", "District 3 Store", "789 Vo Van Tan, District 3, HCMC"},
	{"ST-007", "District 7 Store", "321 Nguyen Thi Thap, District 7, HCMC"},
	{"ST-010", "District 10 Store", "555 Ba Thang Hai, District 10, HCMC"},
}

func kitchensAndStores(ctx context.Context, r repository.Repos, now time.Time) error {
	k := &entity.CentralKitchen{ID: kitchenID, Name: "Central Kitchen HCMC", Address: "10 Tan Thuan, District 7, HCMC",
		Phone: "028 3770 1000", Status: entity.KitchenStatusActive, CreatedAt: now, UpdatedAt: now}
	if err := r.Kitchens.Create(ctx, k); err != nil {
		return err
	}
	for _, s := range stores {
		st := &entity.FranchiseStore{ID: s.id, Code: s.id, KitchenID: k.ID, KitchenName: k.Name,
			Name: s.name, Address: s.address, CreatedAt: now, UpdatedAt: now}
		if err := r.Stores.Create(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type userSeed struct {
	username, name, email string
	role                  entity.Role
	storeID, storeName    string
}

var demoUsers = []userSeed{
	{"admin", "Admin User", "admin@centralkitchen.com", entity.RoleAdmin, "", ""},
	{"manager_d1", "John Smith", "john.smith@centralkitchen.com", entity.RoleManager, "", ""},
	{"kitchen_staff", "Emily Wong", "emily.wong@centralkitchen.com", entity.RoleCentralKitchenStaff, "", ""},
	{"supply_coord", "Michael Chen", "michael.chen@centralkitchen.com", entity.RoleSupplyCoordinator, "", ""},
	{"staff_old", "David Lee", "david.lee@district10store.com", entity.RoleFranchiseStoreStaff, "ST-010", "District 10 Store"},
}

func users(ctx context.Context, r repository.Repos, now time.Time) error {
	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.username)
		if err != nil {
			return err
		}
		err = r.Users.Create(ctx, &entity.User{
			ID: uuid.New().String(), Username: u.username, Name: u.name, Email: u.email, PasswordHash: hash,
			Role: u.role, Status: entity.UserStatusActive, StoreID: u.storeID, StoreName: u.storeName,
			CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

var productTypes = []entity.ProductType{
	{ID: "PT-BREAD", Name: "Bread", StorageCondition: "Room temp"},
	{ID: "PT-PASTRY", Name: "Pastry", StorageCondition: "Room temp"},
	{ID: "PT-PIZZA", Name: "Pizza", StorageCondition: "Refrigerated"},
}

var products = []entity.Product{
	{ID: "PRD-001", Code: "PRD-001", Name: "Fresh Bread", ProductTypeID: "PT-BREAD", Quantity: 245},
	{ID: "PRD-002", Code: "PRD-002", Name: "Croissant", ProductTypeID: "PT-PASTRY", Quantity: 18},
	{ID: "PRD-003", Code: "PRD-003", Name: "Basic Pizza", ProductTypeID: "PT-PIZZA", Quantity: 0},
	{ID: "PRD-004", Code: "PRD-004", Name: "Sandwich", ProductTypeID: "PT-BREAD", Quantity: 156},
}

func catalog(ctx context.Context, r repository.Repos, now time.Time) error {
	for _, pt := range productTypes {
		pt.CreatedAt, pt.UpdatedAt = now, now
		if err := r.ProductTypes.Create(ctx, &pt); err != nil {
			return err
		}
	}
	for _, p := range products {
		p.Unit = "pcs"
		p.Status = entity.ProductStatusActive
		p.MinStock = 20
		p.Location = "Finished Goods F-01"
		p.CreatedAt, p.UpdatedAt = now, now
		if err := r.Products.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

var demoIngredients = []entity.Ingredient{
	{ID: "ING-001", Name: "Wheat Flour", Unit: "kg", Quantity: 15, MinStock: 50, Location: "Storage A-01", StorageCondition: "Dry, room temp", UnitCost: decimal.RequireFromString("0.85")},
	{ID: "ING-002", Name: "Sugar", Unit: "kg", Quantity: 85, MinStock: 30, Location: "Storage A-02", StorageCondition: "Dry", UnitCost: decimal.RequireFromString("1.10")},
	{ID: "ING-003", Name: "Butter", Unit: "kg", Quantity: 12, MinStock: 20, Location: "Cold Storage B-01", StorageCondition: "4-8°C", UnitCost: decimal.RequireFromString("7.50")},
	{ID: "ING-004", Name: "Eggs", Unit: "pcs", Quantity: 350, MinStock: 200, Location: "Cold Storage B-02", StorageCondition: "4-8°C", UnitCost: decimal.RequireFromString("0.12")},
	{ID: "ING-005", Name: "Fresh Milk", Unit: "L", Quantity: 28, MinStock: 40, Location: "Cold Storage B-03", StorageCondition: "2-4°C", UnitCost: decimal.RequireFromString("1.05")},
	{ID: "ING-006", Name: "Water", Unit: "L", Quantity: 500, MinStock: 100, Location: "Storage A-03", StorageCondition: "Room temp", UnitCost: decimal.RequireFromString("0.01")},
	{ID: "ING-007", Name: "Yeast", Unit: "kg", Quantity: 6, MinStock: 2, Location: "Cold Storage B-01", StorageCondition: "4-8°C", UnitCost: decimal.RequireFromString("9.00")},
	{ID: "ING-008", Name: "Salt", Unit: "kg", Quantity: 25, MinStock: 5, Location: "Storage A-02", StorageCondition: "Dry", UnitCost: decimal.RequireFromString("0.40")},
	{ID: "ING-009", Name: "Olive Oil", Unit: "L", Quantity: 8, MinStock: 10, Location: "Storage A-04", StorageCondition: "Dark, room temp", UnitCost: decimal.RequireFromString("8.20")},
}

func ingredients(ctx context.Context, r repository.Repos, now time.Time) error {
	for _, ing := range demoIngredients {
		ing.Code = ing.ID
		ing.UpdatedAt = now
		if err := r.Ingredients.Create(ctx, &ing); err != nil {
			return err
		}
	}
	return nil
}

// ── Recetas ───────────────────────────────────────────────────────────────────

func line(id, name, qty, unit string) entity.RecipeIngredient {
	return entity.RecipeIngredient{IngredientID: id, Name: name, Quantity: decimal.RequireFromString(qty), Unit: unit}
}

func recipes(ctx context.Context, r repository.Repos, now time.Time) error {
	list := []entity.Recipe{
		{
			ID: "RCP-001", Code: "RCP-001", Name: "Fresh Bread", Category: "Bread", ProductID: "PRD-001",
			Servings: 10, PrepMinutes: 180, Instructions: "Traditional Vietnamese fresh bread. Shelf life 24 hours at room temp.",
			Ingredients: []entity.RecipeIngredient{
				line("ING-001", "Wheat Flour", "0.5", "kg"), line("ING-006", "Water", "0.3", "L"),
				line("ING-007", "Yeast", "0.01", "kg"), line("ING-002", "Sugar", "0.02", "kg"),
				line("ING-008", "Salt", "0.008", "kg"),
			},
		},
		{
			ID: "RCP-002", Code: "RCP-002", Name: "Croissant", Category: "Pastry", ProductID: "PRD-002",
			Servings: 12, PrepMinutes: 240, Instructions: "French-style croissant. Shelf life 48 hours at room temp.",
			Ingredients: []entity.RecipeIngredient{
				line("ING-001", "Wheat Flour", "0.4", "kg"), line("ING-003", "Butter", "0.25", "kg"),
				line("ING-005", "Fresh Milk", "0.15", "L"), line("ING-002", "Sugar", "0.05", "kg"),
				line("ING-007", "Yeast", "0.008", "kg"), line("ING-008", "Salt", "0.01", "kg"),
			},
		},
		{
			ID: "RCP-003", Code: "RCP-003", Name: "Basic Pizza", Category: "Pizza", ProductID: "PRD-003",
			Servings: 4, PrepMinutes: 90, Instructions: "Traditional Italian pizza dough. Shelf life 3 days refrigerated.",
			Ingredients: []entity.RecipeIngredient{
				line("ING-001", "Wheat Flour", "0.6", "kg"), line("ING-006", "Water", "0.35", "L"),
				line("ING-007", "Yeast", "0.012", "kg"), line("ING-009", "Olive Oil", "0.03", "L"),
				line("ING-002", "Sugar", "0.01", "kg"), line("ING-008", "Salt", "0.01", "kg"),
			},
		},
	}
	for _, rec := range list {
		rec.CreatedAt, rec.UpdatedAt = now, now
		if err := r.Recipes.Create(ctx, &rec); err != nil {
			return err
		}
	}
	return nil
}

// ── Pedidos y envíos ──────────────────────────────────────────────────────────

type orderSeed struct {
	code, storeID, orderDate, deliveryDate string
	total, items                           int
	status                                 entity.OrderStatus
}

var demoOrders = []orderSeed{
	{"SO-2398", "ST-001", "2026-01-18", "2026-01-19", 240, 5, entity.OrderDelivered},
	{"SO-2403", "ST-007", "2026-01-19", "2026-01-20", 580, 10, entity.OrderDelivered},
	{"SO-2401", "ST-001", "2026-01-20", "2026-01-21", 450, 8, entity.OrderProcessing},
	{"SO-2402", "ST-002", "2026-01-20", "2026-01-21", 320, 6, entity.OrderShipping},
	{"SO-2404", "ST-003", "2026-01-20", "2026-01-22", 200, 4, entity.OrderPending},
}

type shipmentSeed struct {
	code, orderCode string
	status          entity.ShipmentStatus
	received        string
}

var demoShipments = []shipmentSeed{
	{"SH-1099", "SO-2398", entity.ShipmentDelivered, "2026-01-19 14:15"},
	{"SH-1100", "SO-2403", entity.ShipmentDelivered, "2026-01-20 09:30"},
	{"SH-1101", "SO-2402", entity.ShipmentInTransit, ""},
}

// orderLines reparte total en n líneas sobre los productos del catálogo.
func orderLines(total, n int) []entity.OrderItem {
	out := make([]entity.OrderItem, n)
	for i := range out {
		p := products[i%len(products)]
		out[i] = entity.OrderItem{ProductID: p.ID, ProductName: p.Name, Quantity: total / n}
	}
	out[0].Quantity += total % n
	return out
}

func orders(ctx context.Context, r repository.Repos, now time.Time) error {
	names := make(map[string]string, len(stores))
	for _, s := range stores {
		names[s.id] = s.name
	}
	byCode := make(map[string]*entity.Order, len(demoOrders))
	for _, o := range demoOrders {
		items := orderLines(o.total, o.items)
		ord := &entity.Order{
			ID: uuid.New().String(), Code: o.code, StoreID: o.storeID, StoreName: names[o.storeID],
			OrderDate: day(o.orderDate), DeliveryDate: day(o.deliveryDate), TotalQuantity: o.total,
			ItemCount: len(items), Status: o.status, Items: items, CreatedAt: day(o.orderDate), UpdatedAt: now,
		}
		if err := r.Orders.Create(ctx, ord); err != nil {
			return err
		}
		byCode[o.code] = ord
	}
	for _, s := range demoShipments {
		ord := byCode[s.orderCode]
		sh := &entity.Shipment{
			ID: uuid.New().String(), Code: s.code, OrderID: ord.ID, OrderCode: ord.Code,
			StoreID: ord.StoreID, StoreName: ord.StoreName, Status: s.status, CreatedAt: ord.DeliveryDate,
		}
		if s.received != "" {
			t := at(s.received)
			sh.ReceivedAt = &t
		}
		if err := r.Shipments.Create(ctx, sh); err != nil {
			return err
		}
	}
	return nil
}

// ── Producción ────────────────────────────────────────────────────────────────

func production(ctx context.Context, r repository.Repos, now time.Time) error {
	plans := []entity.ProductionPlan{
		{Code: "PP-001", ProductName: "Fresh Bread", PlannedDate: day("2026-01-21"), Quantity: 500, Status: entity.PlanPlanned},
		{Code: "PP-002", ProductName: "Croissant", PlannedDate: day("2026-01-21"), Quantity: 300, Status: entity.PlanInProgress},
		{Code: "PP-003", ProductName: "Sandwich", PlannedDate: day("2026-01-20"), Quantity: 400, Status: entity.PlanCompleted},
		{Code: "PP-004", ProductName: "Basic Pizza", PlannedDate: day("2026-01-22"), Quantity: 200, Status: entity.PlanPlanned},
	}
	planIDs := make(map[string]string, len(plans))
	for _, p := range plans {
		p.ID = uuid.New().String()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := r.Plans.Create(ctx, &p); err != nil {
			return err
		}
		planIDs[p.ProductName] = p.ID
	}

	done := at("2026-01-19 20:00")
	batches := []entity.ProductionBatch{
		{BatchCode: "PB-1043", ProductName: "Sandwich", Quantity: 400, StartedAt: at("2026-01-19 14:00"), Status: entity.BatchCompleted, CompletedAt: &done},
		{BatchCode: "PB-1044", ProductName: "Fresh Bread", Quantity: 500, StartedAt: at("2026-01-20 06:00"), Status: entity.BatchQualityCheck},
		{BatchCode: "PB-1045", ProductName: "Croissant", Quantity: 150, StartedAt: at("2026-01-20 08:00"), Status: entity.BatchInProgress},
	}
	for _, b := range batches {
		b.ID = uuid.New().String()
		if b.ProductName != "Fresh Bread" {
			b.PlanID = planIDs[b.ProductName]
		}
		if err := r.Batches.Create(ctx, &b); err != nil {
			return err
		}
	}
	return nil
}
