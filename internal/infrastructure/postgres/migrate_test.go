package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_OrdenadasYNoVacias(t *testing.T) {
	ms, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, 1, ms[0].Version)
	assert.Equal(t, "init", ms[0].Description)
	for i := 1; i < len(ms); i++ {
		assert.Less(t, ms[i-1].Version, ms[i].Version)
	}
	for _, table := range []string{"users", "orders", "shipments", "production_batches", "stock_movements"} {
		assert.True(t, strings.Contains(ms[0].SQL, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}
