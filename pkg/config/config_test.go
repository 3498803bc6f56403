package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Storage.SeedDemo)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "http://localhost:3000/api", cfg.Backend.BaseURL)
	assert.Equal(t, 20, cfg.Inventory.ProductMinStock)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "Remote")
	v.Set("BACKEND_TIMEOUT", "5")
	v.Set("HTTP_PORT", "9090")
	v.Set("SEED_DEMO", "false")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, StorageRemote, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Storage.SeedDemo)
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "mongo")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "ck", Password: "p@ss word", DBName: "kitchen", SSLMode: "disable"}
	assert.Equal(t, "postgres://ck:p%40ss%20word@db:5432/kitchen?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
