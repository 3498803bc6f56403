package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/CentralKitchen-api/internal/application/auth"
	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/repository"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/memory"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/remote"
	"github.com/jhoicas/CentralKitchen-api/internal/infrastructure/seed"
	"github.com/jhoicas/CentralKitchen-api/pkg/config"
	"github.com/jhoicas/CentralKitchen-api/pkg/logger"
)

// storage repositorios, transacciones y directorio de credenciales del driver elegido.
type storage struct {
	repos     repository.Repos
	tx        ports.TxRunner
	directory auth.Directory
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Int("applied", n).Msg("migraciones aplicadas")
		repos := postgres.NewRepos(pool)
		return &storage{
			repos:     repos,
			tx:        postgres.NewTxRunner(pool),
			directory: auth.NewLocalDirectory(repos.Users, repos.Stores),
			close:     pool.Close,
		}, nil

	case config.StorageRemote:
		client := remote.NewClient(cfg.Backend, remote.NewSessionStore(cfg.Backend.SessionFile), log.Named("remote"))
		if err := client.EnsureSession(ctx, cfg.Backend.Username, cfg.Backend.Password); err != nil {
			// sin sesión de servicio las lecturas fallan con BACKEND_UNAVAILABLE hasta el primer login
			log.Warn().Err(err).Str("base_url", cfg.Backend.BaseURL).Msg("sesión con el backend")
		}
		return &storage{
			repos:     remote.NewRepos(client),
			tx:        remote.NewTxRunner(client),
			directory: remote.NewDirectory(client),
			close:     func() {},
		}, nil

	default:
		store := memory.NewStore()
		if cfg.Storage.SeedDemo {
			if _, err := seed.Load(ctx, store, log.Named("seed")); err != nil {
				return nil, fmt.Errorf("datos demo: %w", err)
			}
		}
		return &storage{
			repos:     store.Repos(),
			tx:        store,
			directory: auth.NewLocalDirectory(store.Repos().Users, store.Repos().Stores),
			close:     func() {},
		}, nil
	}
}
