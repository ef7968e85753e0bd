package commands

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/clientrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/orderrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/riderrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/memstore"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

type completeFixture struct {
	store   *memstore.Store
	handler CompleteOrderCommandHandler
}

func newCompleteFixture(t *testing.T) *completeFixture {
	t.Helper()

	store := memstore.NewStore()
	orderRepo, err := orderrepo.NewRepository(store)
	require.NoError(t, err)
	riderRepo, err := riderrepo.NewRepository(store)
	require.NoError(t, err)
	clientRepo, err := clientrepo.NewRepository(store)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &completeFixture{
		store:   store,
		handler: NewCompleteOrderCommandHandler(store, orderRepo, riderRepo, clientRepo, logger),
	}
}

func (f *completeFixture) seed(t *testing.T, collection, id string, doc ports.Document) kernel.Ref {
	t.Helper()
	ref, err := kernel.NewRef(collection, id)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), ref, doc))
	return ref
}

func (f *completeFixture) doc(t *testing.T, ref kernel.Ref) ports.Document {
	t.Helper()
	doc, ok, err := f.store.Get(context.Background(), ref)
	require.NoError(t, err)
	require.True(t, ok)
	return doc
}

// seedAssignedOrder wires up a full post-assignment scene: an order bound to
// a rider, a client with live session fields, and the assignment record refs.
func (f *completeFixture) seedAssignedOrder(t *testing.T) (orderRef, riderRef, clientRef kernel.Ref) {
	t.Helper()

	clientRef = f.seed(t, kernel.CollectionUsers, "client-1", ports.Document{
		"email":        "c@x.pe",
		"chat_ref":     "chats/chat-1",
		"rider_ref":    "/rider/rider-1",
		"orderref":     "/orders/order-1",
		"activeorders": true,
	})
	assignmentRef, err := kernel.AssignmentRef("as-1")
	require.NoError(t, err)
	riderRef = f.seed(t, kernel.CollectionRiders, "rider-1", ports.Document{
		"name":              "Raul",
		"active_rider":      true,
		"active_orders":     1,
		"number_deliverys":  7,
		"earn":              80.0,
		"asigned_rider_ref": assignmentRef,
	})
	orderRef = f.seed(t, kernel.CollectionOrders, "order-1", ports.Document{
		"estado":            "Enviando",
		"admin_view":        true,
		"activo":            true,
		"asigned":           true,
		"clienteref":        clientRef,
		"rider_ref":         riderRef,
		"asigned_rider_ref": assignmentRef,
		"delivery_price":    6.5,
		"total":             40.0,
		"fecha_creacion":    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	return orderRef, riderRef, clientRef
}

func Test_CompleteOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("completes order and reconciles rider and client", func(t *testing.T) {
		f := newCompleteFixture(t)
		orderRef, riderRef, clientRef := f.seedAssignedOrder(t)

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		orderDoc := f.doc(t, orderRef)
		assert.Equal(t, "Completados", orderDoc["estado"])
		assert.Equal(t, false, orderDoc["activo"])
		assert.IsType(t, time.Time{}, orderDoc["fecha_entrega"])

		riderDoc := f.doc(t, riderRef)
		assert.Equal(t, 0, riderDoc["active_orders"])
		assert.Equal(t, 8.0, riderDoc["number_deliverys"])
		assert.Equal(t, 86.5, riderDoc["earn"])
		_, hasAssignment := riderDoc["asigned_rider_ref"]
		assert.False(t, hasAssignment)

		clientDoc := f.doc(t, clientRef)
		for _, field := range []string{"chat_ref", "rider_ref", "orderref", "activeorders"} {
			_, present := clientDoc[field]
			assert.Falsef(t, present, "session field %s should be cleared", field)
		}
		assert.Equal(t, "c@x.pe", clientDoc["email"])
	})

	t.Run("second completion is a no-op", func(t *testing.T) {
		f := newCompleteFixture(t)
		orderRef, riderRef, _ := f.seedAssignedOrder(t)

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		first := f.doc(t, riderRef)
		require.NoError(t, f.handler.Handle(ctx, cmd))
		second := f.doc(t, riderRef)

		// counters move exactly once per distinct order, never per call
		assert.Equal(t, first["number_deliverys"], second["number_deliverys"])
		assert.Equal(t, first["earn"], second["earn"])
		assert.Equal(t, first["active_orders"], second["active_orders"])
	})

	t.Run("missing order", func(t *testing.T) {
		f := newCompleteFixture(t)
		orderRef, err := kernel.OrderRef("ghost")
		require.NoError(t, err)

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		assert.ErrorIs(t, f.handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("broken rider reference does not block completion", func(t *testing.T) {
		f := newCompleteFixture(t)
		riderRef, err := kernel.RiderRef("ghost-rider")
		require.NoError(t, err)
		orderRef := f.seed(t, kernel.CollectionOrders, "order-1", ports.Document{
			"estado":     "Enviando",
			"admin_view": true,
			"activo":     true,
			"rider_ref":  riderRef,
		})

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		assert.Equal(t, "Completados", f.doc(t, orderRef)["estado"])
	})

	t.Run("missing client document does not block completion", func(t *testing.T) {
		f := newCompleteFixture(t)
		clientRef, err := kernel.UserRef("ghost-client")
		require.NoError(t, err)
		orderRef := f.seed(t, kernel.CollectionOrders, "order-1", ports.Document{
			"estado":     "Preparando",
			"admin_view": true,
			"activo":     true,
			"clienteref": clientRef,
		})

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		assert.Equal(t, "Completados", f.doc(t, orderRef)["estado"])
	})

	t.Run("existing delivery timestamp is preserved", func(t *testing.T) {
		f := newCompleteFixture(t)
		delivered := time.Date(2025, 5, 20, 18, 30, 0, 0, time.UTC)
		orderRef := f.seed(t, kernel.CollectionOrders, "order-1", ports.Document{
			"estado":        "Enviando",
			"admin_view":    true,
			"activo":        true,
			"fecha_entrega": delivered,
		})

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		assert.Equal(t, delivered, f.doc(t, orderRef)["fecha_entrega"])
	})

	t.Run("rider counter never goes negative", func(t *testing.T) {
		f := newCompleteFixture(t)
		riderRef := f.seed(t, kernel.CollectionRiders, "rider-1", ports.Document{
			"name":             "Raul",
			"active_rider":     true,
			"active_orders":    0,
			"number_deliverys": 0,
			"earn":             0.0,
		})
		orderRef := f.seed(t, kernel.CollectionOrders, "order-1", ports.Document{
			"estado":     "Enviando",
			"admin_view": true,
			"activo":     true,
			"rider_ref":  riderRef,
		})

		cmd, err := NewCompleteOrderCommand(orderRef)
		require.NoError(t, err)
		require.NoError(t, f.handler.Handle(ctx, cmd))

		riderDoc := f.doc(t, riderRef)
		assert.Equal(t, 0, riderDoc["active_orders"])
		assert.Equal(t, 1.0, riderDoc["number_deliverys"])
	})
}
