package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

func mustRef(t *testing.T, collection, id string) kernel.Ref {
	t.Helper()
	ref, err := kernel.NewRef(collection, id)
	require.NoError(t, err)
	return ref
}

func restoredNew(t *testing.T) (*Order, kernel.Ref, kernel.Ref) {
	t.Helper()
	clientRef := mustRef(t, kernel.CollectionUsers, "client-1")
	addressRef := mustRef(t, kernel.CollectionAddresses, "addr-1")
	aggregate, err := RestoreOrder(mustRef(t, kernel.CollectionOrders, "order-1"), Restored{
		Status:           New,
		AdminVisible:     true,
		Active:           true,
		ClientRef:        clientRef,
		ClientAddressRef: addressRef,
		Total:            30.0,
		DeliveryFee:      5.0,
		CreatedAt:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return aggregate, clientRef, addressRef
}

func Test_RestoreOrder(t *testing.T) {
	t.Run("restores a complete document", func(t *testing.T) {
		aggregate, clientRef, addressRef := restoredNew(t)

		assert.Equal(t, New, aggregate.Status())
		assert.True(t, aggregate.AdminVisible())
		assert.True(t, aggregate.Active())
		assert.False(t, aggregate.Assigned())
		assert.Equal(t, clientRef, aggregate.ClientRef())
		assert.Equal(t, addressRef, aggregate.ClientAddressRef())
		assert.True(t, aggregate.HasClientRefs())
		assert.NoError(t, aggregate.Validate())
	})

	t.Run("tolerates legacy documents without references", func(t *testing.T) {
		aggregate, err := RestoreOrder(mustRef(t, kernel.CollectionOrders, "order-1"), Restored{
			Status: Preparing,
		})
		require.NoError(t, err)
		assert.False(t, aggregate.HasClientRefs())
		assert.True(t, aggregate.ClientRef().IsZero())
	})

	t.Run("rejects invalid identity and status", func(t *testing.T) {
		_, err := RestoreOrder(kernel.Ref{}, Restored{Status: New})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = RestoreOrder(mustRef(t, kernel.CollectionOrders, "order-1"), Restored{})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var aggregate Order
		assert.ErrorIs(t, aggregate.Validate(), ErrOrderIsNotConstructed)
	})
}

func Test_Order_Assign(t *testing.T) {
	riderRef := func(t *testing.T) kernel.Ref { return mustRef(t, kernel.CollectionRiders, "rider-1") }
	assignmentRef := func(t *testing.T) kernel.Ref { return mustRef(t, kernel.CollectionAssignments, "as-1") }

	t.Run("binds rider and assignment refs", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)

		require.NoError(t, aggregate.Assign(riderRef(t), assignmentRef(t)))
		assert.True(t, aggregate.Assigned())
		assert.True(t, aggregate.AssignedFlag())
		assert.Equal(t, riderRef(t), aggregate.RiderRef())
		assert.Equal(t, assignmentRef(t), aggregate.AssignmentRef())
		assert.NoError(t, aggregate.ValidateAssignmentConsistency())
	})

	t.Run("rejects a second assignment", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)
		require.NoError(t, aggregate.Assign(riderRef(t), assignmentRef(t)))

		err := aggregate.Assign(mustRef(t, kernel.CollectionRiders, "rider-2"),
			mustRef(t, kernel.CollectionAssignments, "as-2"))
		assert.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, riderRef(t), aggregate.RiderRef())
	})

	t.Run("rejects terminal orders", func(t *testing.T) {
		aggregate, err := RestoreOrder(mustRef(t, kernel.CollectionOrders, "order-1"), Restored{
			Status: Cancelled,
		})
		require.NoError(t, err)

		assert.ErrorIs(t, aggregate.Assign(riderRef(t), assignmentRef(t)), errs.ErrStateIsInvalid)
	})

	t.Run("rejects zero refs", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)
		assert.Error(t, aggregate.Assign(kernel.Ref{}, assignmentRef(t)))
		assert.Error(t, aggregate.Assign(riderRef(t), kernel.Ref{}))
		assert.False(t, aggregate.Assigned())
	})
}

func Test_Order_Complete(t *testing.T) {
	t.Run("moves to completed and leaves the active set", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)

		require.NoError(t, aggregate.Complete())
		assert.Equal(t, Completed, aggregate.Status())
		assert.False(t, aggregate.Active())
		assert.Nil(t, aggregate.DeliveredAt())
	})

	t.Run("completing twice is an error at the aggregate level", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)
		require.NoError(t, aggregate.Complete())
		assert.ErrorIs(t, aggregate.Complete(), errs.ErrStateIsInvalid)
	})
}

func Test_Order_MarkPreparing(t *testing.T) {
	t.Run("stores the pickup PIN and opens payment", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)

		require.NoError(t, aggregate.MarkPreparing("347"))
		assert.Equal(t, Preparing, aggregate.Status())
		assert.Equal(t, "347", aggregate.PickupPIN())
		assert.True(t, aggregate.ReadyToPay())
		assert.True(t, aggregate.Active())
	})

	t.Run("rejects malformed PINs", func(t *testing.T) {
		for _, pin := range []string{"", "12", "1234", "a12", "1 2"} {
			aggregate, _, _ := restoredNew(t)
			assert.ErrorIsf(t, aggregate.MarkPreparing(pin), errs.ErrValueIsInvalid, "pin %q", pin)
		}
	})

	t.Run("only new orders start preparation", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)
		require.NoError(t, aggregate.MarkPreparing("347"))
		assert.ErrorIs(t, aggregate.MarkPreparing("222"), errs.ErrStateIsInvalid)
	})
}

func Test_Order_Cancel(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

	t.Run("stamps a terminal timestamp once", func(t *testing.T) {
		aggregate, _, _ := restoredNew(t)

		require.NoError(t, aggregate.Cancel(now))
		assert.Equal(t, Cancelled, aggregate.Status())
		assert.False(t, aggregate.Active())
		require.NotNil(t, aggregate.DeliveredAt())
		assert.Equal(t, now, *aggregate.DeliveredAt())
	})

	t.Run("preserves an existing timestamp", func(t *testing.T) {
		earlier := now.Add(-24 * time.Hour)
		aggregate, err := RestoreOrder(mustRef(t, kernel.CollectionOrders, "order-1"), Restored{
			Status:      Dispatching,
			DeliveredAt: &earlier,
		})
		require.NoError(t, err)

		require.NoError(t, aggregate.Cancel(now))
		assert.Equal(t, earlier, *aggregate.DeliveredAt())
	})
}

func Test_Order_ValidateAssignmentConsistency(t *testing.T) {
	orderRef := func(t *testing.T) kernel.Ref { return mustRef(t, kernel.CollectionOrders, "order-1") }

	t.Run("flag without refs", func(t *testing.T) {
		aggregate, err := RestoreOrder(orderRef(t), Restored{Status: New, Assigned: true})
		require.NoError(t, err)
		assert.ErrorIs(t, aggregate.ValidateAssignmentConsistency(), errs.ErrDataIsMissing)
	})

	t.Run("refs without flag", func(t *testing.T) {
		aggregate, err := RestoreOrder(orderRef(t), Restored{
			Status:        New,
			RiderRef:      mustRef(t, kernel.CollectionRiders, "rider-1"),
			AssignmentRef: mustRef(t, kernel.CollectionAssignments, "as-1"),
		})
		require.NoError(t, err)
		assert.ErrorIs(t, aggregate.ValidateAssignmentConsistency(), errs.ErrStateIsInvalid)
	})

	t.Run("consistent in both directions", func(t *testing.T) {
		unassigned, err := RestoreOrder(orderRef(t), Restored{Status: New})
		require.NoError(t, err)
		assert.NoError(t, unassigned.ValidateAssignmentConsistency())
	})
}
