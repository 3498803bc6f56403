package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CentralKitchen-api/internal/application/ports"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/entity"
	"github.com/jhoicas/CentralKitchen-api/internal/domain/session"
)

var (
	manager = session.Identity{UserID: "u-mgr", Username: "manager", Role: entity.RoleManager}
	staffD1 = session.Identity{UserID: "u-staff", Username: "staff_d1", Role: entity.RoleFranchiseStoreStaff, StoreID: "st1"}
)

type fakeConn struct {
	mu     sync.Mutex
	msgs   [][]byte
	closed bool
	fail   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.msgs = append(c.msgs, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.msgs...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// ──────────────────────────────────────────────────────────────────────────────
// Ring
// ──────────────────────────────────────────────────────────────────────────────

func TestRing_MasRecientePrimeroYDescartaAntiguos(t *testing.T) {
	r := NewRing(3)
	for _, code := range []string{"SO-1", "SO-2", "SO-3", "SO-4"} {
		r.Add(ports.Event{Code: code})
	}
	got := r.Recent(0)
	require.Len(t, got, 3)
	assert.Equal(t, "SO-4", got[0].Code)
	assert.Equal(t, "SO-2", got[2].Code)

	assert.Len(t, r.Recent(2), 2)
	assert.Empty(t, NewRing(5).Recent(10))
}

// ──────────────────────────────────────────────────────────────────────────────
// Hub
// ──────────────────────────────────────────────────────────────────────────────

func TestHub_DifundeATodosLosClientes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(10, nil)
	go h.Run(ctx)

	a, b := &fakeConn{}, &fakeConn{}
	require.True(t, h.Join(a, manager))
	require.True(t, h.Join(b, manager))

	h.Publish(ctx, ports.Event{Type: ports.EventOrderShipped, Code: "SO-001"})

	require.Eventually(t, func() bool { return len(a.received()) == 1 && len(b.received()) == 1 }, time.Second, 10*time.Millisecond)

	var e ports.Event
	require.NoError(t, json.Unmarshal(a.received()[0], &e))
	assert.Equal(t, "order.shipped", e.Type)
	assert.Equal(t, "SO-001", h.Recent(1)[0].Code)
}

func TestHub_RetiraClientesQueFallan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(10, nil)
	go h.Run(ctx)

	bad := &fakeConn{fail: true}
	require.True(t, h.Join(bad, manager))
	h.Publish(ctx, ports.Event{Type: ports.EventStockIn})

	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 10*time.Millisecond)
	assert.True(t, bad.isClosed())
}

func TestHub_CierraClientesAlCancelar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(10, nil)
	done := make(chan struct{})
	go func() { h.Run(ctx); close(done) }()

	c := &fakeConn{}
	require.True(t, h.Join(c, manager))
	cancel()
	<-done
	assert.True(t, c.isClosed())
}

func TestHub_JoinYLeaveNoBloqueanTrasTerminar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(10, nil)
	done := make(chan struct{})
	go func() { h.Run(ctx); close(done) }()

	c := &fakeConn{}
	require.True(t, h.Join(c, manager))
	cancel()
	<-done

	left := make(chan bool)
	go func() {
		h.Leave(c)
		left <- h.Join(&fakeConn{}, manager)
	}()
	select {
	case joined := <-left:
		assert.False(t, joined, "el hub terminado no acepta conexiones")
	case <-time.After(time.Second):
		t.Fatal("Leave/Join bloqueados con el hub detenido")
	}
}

func TestHub_PersonalDeTiendaSoloRecibeSuTienda(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(10, nil)
	go h.Run(ctx)

	mgr, staff := &fakeConn{}, &fakeConn{}
	require.True(t, h.Join(mgr, manager))
	require.True(t, h.Join(staff, staffD1))

	h.Publish(ctx, ports.Event{Type: ports.EventOrderShipped, Code: "SO-002", StoreID: "st3"})
	h.Publish(ctx, ports.Event{Type: ports.EventOrderShipped, Code: "SO-001", StoreID: "st1"})
	h.Publish(ctx, ports.Event{Type: ports.EventBatchCompleted, Code: "PB-1046"})

	require.Eventually(t, func() bool { return len(mgr.received()) == 3 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return len(staff.received()) == 2 }, time.Second, 10*time.Millisecond)

	var first ports.Event
	require.NoError(t, json.Unmarshal(staff.received()[0], &first))
	assert.Equal(t, "SO-001", first.Code)
}

func TestHub_PublishSinRunNoBloquea(t *testing.T) {
	h := NewHub(2, nil)
	for i := 0; i < broadcastBuffer+5; i++ {
		h.Publish(context.Background(), ports.Event{Type: ports.EventStockOut})
	}
	assert.Len(t, h.Recent(0), 2)
}
