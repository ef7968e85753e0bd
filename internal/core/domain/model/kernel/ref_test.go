package kernel_test

import (
	"testing"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRef(t *testing.T) {
	t.Run("should create valid ref", func(t *testing.T) {
		ref, err := kernel.NewRef(kernel.CollectionOrders, "abc123")

		require.NoError(t, err)
		require.NoError(t, ref.Validate())
		assert.Equal(t, "orders", ref.Collection())
		assert.Equal(t, "abc123", ref.ID())
		assert.Equal(t, "orders/abc123", ref.Path())
		assert.False(t, ref.IsZero())
	})

	t.Run("should fail with empty collection", func(t *testing.T) {
		_, err := kernel.NewRef("", "abc123")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := kernel.NewRef(kernel.CollectionOrders, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with slash in segments", func(t *testing.T) {
		_, err := kernel.NewRef("orders/sub", "abc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.NewRef("orders", "a/b")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRefFromPath(t *testing.T) {
	t.Run("should parse plain path", func(t *testing.T) {
		ref, err := kernel.RefFromPath("rider/PNQu5KDsGuEjCoveAw6g")

		require.NoError(t, err)
		assert.Equal(t, kernel.CollectionRiders, ref.Collection())
		assert.Equal(t, "PNQu5KDsGuEjCoveAw6g", ref.ID())
	})

	t.Run("should tolerate leading slash", func(t *testing.T) {
		ref, err := kernel.RefFromPath("/rider/PNQu5KDsGuEjCoveAw6g")

		require.NoError(t, err)
		assert.Equal(t, "rider/PNQu5KDsGuEjCoveAw6g", ref.Path())
	})

	t.Run("should reject malformed paths", func(t *testing.T) {
		for _, path := range []string{"", "/", "rider", "rider/", "/rider//x", "a/b/c"} {
			_, err := kernel.RefFromPath(path)
			require.Error(t, err, "path %q should be rejected", path)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRef_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var ref kernel.Ref

		require.Error(t, ref.Validate())
		assert.True(t, ref.IsZero())
	})
}

func TestRef_IsEqual(t *testing.T) {
	a, _ := kernel.OrderRef("o-1")
	b, _ := kernel.OrderRef("o-1")
	c, _ := kernel.OrderRef("o-2")
	d, _ := kernel.RiderRef("o-1")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(d))
}

func TestCollectionHelpers(t *testing.T) {
	order, err := kernel.OrderRef("o-1")
	require.NoError(t, err)
	assert.True(t, order.In(kernel.CollectionOrders))

	rider, err := kernel.RiderRef("r-1")
	require.NoError(t, err)
	assert.True(t, rider.In(kernel.CollectionRiders))

	asg, err := kernel.AssignmentRef("a-1")
	require.NoError(t, err)
	assert.Equal(t, "asigned_rider/a-1", asg.Path())

	user, err := kernel.UserRef("u-1")
	require.NoError(t, err)
	assert.True(t, user.In(kernel.CollectionUsers))
}
