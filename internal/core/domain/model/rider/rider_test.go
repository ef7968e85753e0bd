package rider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

func mustRiderRef(t *testing.T, id string) kernel.Ref {
	t.Helper()
	ref, err := kernel.RiderRef(id)
	require.NoError(t, err)
	return ref
}

func Test_RestoreRider(t *testing.T) {
	t.Run("restores a complete document", func(t *testing.T) {
		assignmentRef, err := kernel.AssignmentRef("as-1")
		require.NoError(t, err)
		createdAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

		aggregate, err := RestoreRider(mustRiderRef(t, "rider-1"), Restored{
			DisplayName:         "Carlos",
			Active:              true,
			ActiveOrders:        2,
			CompletedDeliveries: 7,
			Earnings:            81.5,
			AssignmentRef:       assignmentRef,
			CreatedAt:           createdAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "Carlos", aggregate.DisplayName())
		assert.True(t, aggregate.Active())
		assert.Equal(t, 2, aggregate.ActiveOrders())
		assert.Equal(t, 7, aggregate.CompletedDeliveries())
		assert.Equal(t, 81.5, aggregate.Earnings())
		assert.Equal(t, assignmentRef, aggregate.AssignmentRef())
		assert.Equal(t, createdAt, aggregate.CreatedAt())
		assert.NoError(t, aggregate.Validate())
	})

	t.Run("normalizes a drifted negative counter", func(t *testing.T) {
		aggregate, err := RestoreRider(mustRiderRef(t, "rider-1"), Restored{
			ActiveOrders: -3,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, aggregate.ActiveOrders())
	})

	t.Run("rejects a zero ref", func(t *testing.T) {
		_, err := RestoreRider(kernel.Ref{}, Restored{})
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var aggregate Rider
		assert.ErrorIs(t, aggregate.Validate(), ErrRiderIsNotConstructed)
	})
}

func Test_Rider_NextActiveOrders(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		expected int
	}{
		{"decrements a positive counter", 3, 2},
		{"reaches zero", 1, 0},
		{"never goes negative", 0, 0},
		{"drifted data stays at zero", -5, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			aggregate, err := RestoreRider(mustRiderRef(t, "rider-1"), Restored{
				ActiveOrders: test.stored,
			})
			require.NoError(t, err)
			assert.Equal(t, test.expected, aggregate.NextActiveOrders())
		})
	}
}
