package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
)

func TestPublish_CuentaPorTipo(t *testing.T) {
	m := New(nil)
	m.Publish(context.Background(), ports.Event{Type: ports.EventOrderCreated})
	m.Publish(context.Background(), ports.Event{Type: ports.EventOrderCreated})
	m.Publish(context.Background(), ports.Event{Type: ports.EventBatchCompleted})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("order.created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues("batch.completed")))
}

func TestMiddleware_UsaLaRutaRegistrada(t *testing.T) {
	m := New(nil)
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders/SO-001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/orders/:id", "204")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "central_kitchen_http_requests_total"))
}
