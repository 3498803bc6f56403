package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appanalytics "github.com/jhoicas/CentralKitchen-api/internal/application/analytics"
	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/inventory"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/application/usecase"
	"github.com/jhoicas/CentralKitchen-api/internal/application/workflow"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/rbac"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/events"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/CentralKitchen-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/CentralKitchen-api/internal/interfaces/http"
	"github.com/jhoicas/CentralKitchen-api/pkg/config"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}

	catalog := rbac.Default()
	if cfg.Storage.PermissionsFile != "" {
		catalog, err = rbac.LoadFile(cfg.Storage.PermissionsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Storage.PermissionsFile).Msg("catálogo de permisos")
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	hub := events.NewHub(100, log)
	go hub.Run(ctx)
	publisher := ports.Multi{hub, m}

	repos := st.repos
	authUC := auth.NewAuthUseCase(st.directory, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(m.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Central Kitchen API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Access:       usecase.NewAccessService(catalog),
		UserUC:       usecase.NewUserUseCase(repos.Users, repos.Stores),
		StoreUC:      usecase.NewStoreUseCase(repos.Stores, repos.Kitchens),
		ProductUC:    usecase.NewProductUseCase(repos.Products, repos.ProductTypes, cfg.Inventory.ProductMinStock),
		RecipeUC:     usecase.NewRecipeUseCase(repos.Recipes, repos.Ingredients),
		StockUC:      inventory.NewStockUseCase(repos, st.tx, publisher, log.Named("inventory")),
		OrderUC:      workflow.NewOrderUseCase(repos, st.tx, publisher, log.Named("orders")),
		ProductionUC: workflow.NewProductionUseCase(repos, st.tx, publisher, log.Named("production")),
		DashboardUC:  appanalytics.NewDashboardUseCase(repos, hub),
		ReportUC:     appanalytics.NewReportUseCase(repos, infrapdf.NewMarotoReportGenerator(cfg.App.Name)),
		Hub:          hub,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	stop()

	log.Info().Msg("aplicación detenida")
}
