package queries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/orderrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/memstore"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

type queryFixture struct {
	store     *memstore.Store
	orderRepo ports.OrderRepository
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()

	store := memstore.NewStore()
	orderRepo, err := orderrepo.NewRepository(store)
	require.NoError(t, err)
	return &queryFixture{store: store, orderRepo: orderRepo}
}

func mustOrderRef(t *testing.T, id string) kernel.Ref {
	t.Helper()
	ref, err := kernel.OrderRef(id)
	require.NoError(t, err)
	return ref
}

func (f *queryFixture) seedOrder(t *testing.T, id string, doc ports.Document) kernel.Ref {
	t.Helper()
	ref, err := kernel.OrderRef(id)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(context.Background(), ref, doc))
	return ref
}

func orderDoc(wireStatus string, adminView, active bool, createdAt time.Time) ports.Document {
	return ports.Document{
		"estado":         wireStatus,
		"admin_view":     adminView,
		"activo":         active,
		"total":          20.0,
		"delivery_price": 4.0,
		"fecha_creacion": createdAt,
	}
}

func Test_GetOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("returns the read model", func(t *testing.T) {
		f := newQueryFixture(t)
		riderRef, err := kernel.RiderRef("rider-1")
		require.NoError(t, err)
		doc := orderDoc("Enviando", true, true, created)
		doc["rider_ref"] = riderRef
		doc["pickup_pin"] = "482"
		ref := f.seedOrder(t, "order-1", doc)

		query, err := NewGetOrderQuery(ref)
		require.NoError(t, err)

		response, err := NewGetOrderQueryHandler(f.orderRepo).Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, "order-1", response.ID)
		assert.Equal(t, "Dispatching", response.Status)
		assert.Equal(t, "rider/rider-1", response.RiderRef)
		assert.Equal(t, "482", response.PickupPIN)
		assert.Equal(t, 4.0, response.DeliveryFee)
		assert.Equal(t, created, response.CreatedAt)
	})

	t.Run("unconfirmed order answers not found", func(t *testing.T) {
		f := newQueryFixture(t)
		ref := f.seedOrder(t, "order-1", orderDoc("Nuevo", false, true, created))

		query, err := NewGetOrderQuery(ref)
		require.NoError(t, err)

		_, err = NewGetOrderQueryHandler(f.orderRepo).Handle(ctx, query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing order answers not found", func(t *testing.T) {
		f := newQueryFixture(t)
		ref, err := kernel.OrderRef("ghost")
		require.NoError(t, err)

		query, err := NewGetOrderQuery(ref)
		require.NoError(t, err)

		_, err = NewGetOrderQueryHandler(f.orderRepo).Handle(ctx, query)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func Test_GetAllOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	f.seedOrder(t, "order-old", orderDoc("Completados", true, false,
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)))
	f.seedOrder(t, "order-new", orderDoc("Nuevo", true, true,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	f.seedOrder(t, "order-hidden", orderDoc("Nuevo", false, true,
		time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)))

	responses, err := NewGetAllOrdersQueryHandler(f.orderRepo).Handle(ctx, NewGetAllOrdersQuery())
	require.NoError(t, err)

	require.Len(t, responses, 2)
	assert.Equal(t, "order-new", responses[0].ID)
	assert.Equal(t, "order-old", responses[1].ID)
}

func Test_GetActiveOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture(t)

	f.seedOrder(t, "order-done", orderDoc("Completados", true, false,
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)))
	f.seedOrder(t, "order-live", orderDoc("Preparando", true, true,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))

	responses, err := NewGetActiveOrdersQueryHandler(f.orderRepo).Handle(ctx, NewGetActiveOrdersQuery())
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, "order-live", responses[0].ID)
}
