package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/CentralKitchen-api/internal/application/analytics"
	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/inventory"
	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/events"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Access       *usecase.AccessService
	UserUC       *usecase.UserUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	RecipeUC     *usecase.RecipeUseCase
	StockUC      *inventory.StockUseCase
	OrderUC      *workflow.OrderUseCase
	ProductionUC *workflow.ProductionUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	ReportUC     *appanalytics.ReportUseCase
	Hub          *events.Hub // nil: sin /ws/events
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	page := func(p entity.PageID) fiber.Handler { return RequirePage(p, deps.Access) }

	accessHandler := NewAccessHandler(deps.Access)
	protected.Get("/access/me", accessHandler.Me)
	protected.Get("/access/pages/:page", accessHandler.CheckPage)
	protected.Get("/access/roles", page(entity.PageUsers), accessHandler.Roles)

	// Dashboard
	dashboard := protected.Group("/dashboard", page(entity.PageDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/activity", dashboardHandler.Activity)
	dashboard.Get("/reports/:type", dashboardHandler.Report)

	// Users
	users := protected.Group("/users", page(entity.PageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Patch("/:id/toggle-status", userHandler.ToggleStatus)

	// Tiendas y cocinas centrales
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores := protected.Group("/franchise-stores", page(entity.PageStores))
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	kitchens := protected.Group("/central-kitchens", page(entity.PageStores))
	kitchens.Get("/", storeHandler.ListKitchens)
	kitchens.Post("/", storeHandler.CreateKitchen)
	kitchens.Get("/:id", storeHandler.GetKitchen)
	kitchens.Put("/:id", storeHandler.UpdateKitchen)
	kitchens.Delete("/:id", storeHandler.DeleteKitchen)

	// Productos y tipos
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products", page(entity.PageInventory))
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/status", productHandler.UpdateStatus)
	products.Delete("/:id", productHandler.Delete)

	types := protected.Group("/product-types", page(entity.PageInventory))
	types.Get("/", productHandler.ListTypes)
	types.Post("/", productHandler.CreateType)
	types.Get("/:id", productHandler.GetType)
	types.Put("/:id", productHandler.UpdateType)
	types.Delete("/:id", productHandler.DeleteType)

	// Recetas
	recipes := protected.Group("/recipes", page(entity.PageRecipes))
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Get("/", recipeHandler.List)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/categories", recipeHandler.Categories)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Get("/:id/cost", recipeHandler.Cost)
	recipes.Put("/:id", recipeHandler.Update)
	recipes.Delete("/:id", recipeHandler.Delete)

	// Inventario
	inv := protected.Group("/inventory", page(entity.PageInventory))
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	inv.Get("/ingredients", inventoryHandler.ListIngredients)
	inv.Post("/ingredients", inventoryHandler.CreateIngredient)
	inv.Get("/ingredients/:id", inventoryHandler.GetIngredient)
	inv.Put("/ingredients/:id", inventoryHandler.UpdateIngredient)
	inv.Delete("/ingredients/:id", inventoryHandler.DeleteIngredient)
	inv.Post("/ingredients/:id/stock-in", inventoryHandler.StockIn)
	inv.Post("/ingredients/:id/stock-out", inventoryHandler.StockOut)
	inv.Get("/products", inventoryHandler.ListProductStock)
	inv.Put("/products/:id/stock", inventoryHandler.SetProductStock)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/locations", inventoryHandler.Locations)
	inv.Get("/movements", inventoryHandler.Movements)

	// Pedidos y envíos
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders", page(entity.PageOrders))
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Post("/:id/process", orderHandler.Process)
	orders.Post("/:id/ship", orderHandler.Ship)
	orders.Post("/:id/deliver", orderHandler.Deliver)
	orders.Get("/:id/shipments", orderHandler.OrderShipments)

	shipments := protected.Group("/shipments", page(entity.PageOrders))
	shipments.Get("/", orderHandler.ListShipments)
	shipments.Get("/:id", orderHandler.GetShipment)
	shipments.Post("/:id/dispatch", orderHandler.Dispatch)
	shipments.Post("/:id/delivered", orderHandler.ConfirmDelivery)

	// Producción
	production := protected.Group("/production", page(entity.PageProduction))
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Get("/plans", productionHandler.ListPlans)
	production.Post("/plans", productionHandler.CreatePlan)
	production.Get("/plans/:id", productionHandler.GetPlan)
	production.Delete("/plans/:id", productionHandler.DeletePlan)
	production.Post("/plans/:id/start", productionHandler.StartPlan)
	production.Post("/plans/:id/complete", productionHandler.CompletePlan)
	production.Get("/batches", productionHandler.ListBatches)
	production.Post("/batches", productionHandler.CreateBatch)
	production.Get("/batches/:id", productionHandler.GetBatch)
	production.Post("/batches/:id/complete", productionHandler.CompleteBatch)
	production.Post("/batches/:id/send-to-qc", productionHandler.SendToQualityCheck)
	production.Post("/batches/:id/quality-check", productionHandler.QualityCheck)

	if deps.Hub != nil {
		app.Get("/ws/events", EventsUpgrade(deps.JWTSecret), EventsStream(deps.Hub))
	}
}
