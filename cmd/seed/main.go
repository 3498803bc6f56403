// seed carga los datos de demostración (tiendas, usuarios, catálogo, pedidos y producción)
// en una base PostgreSQL. No hace nada si el usuario admin ya existe.
//
// Uso: go run ./cmd/seed [DATABASE_URL]
// Sin argumento usa la configuración de la app (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/seed"
	"github.com/jhoicas/CentralKitchen-api/pkg/config"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var pool *pgxpool.Pool
	if len(os.Args) > 1 {
		pool, err = postgres.Connect(ctx, os.Args[1], false)
	} else {
		pool, err = postgres.NewPool(ctx, cfg.DB)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	n, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Int("applied", n).Msg("migraciones aplicadas")

	loaded, err := seed.Load(ctx, postgres.NewTxRunner(pool), log)
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos demo")
	}
	if !loaded {
		fmt.Println("La base ya tenía datos demo; no se cargó nada.")
		return
	}
	fmt.Println("Datos demo cargados.")
}
