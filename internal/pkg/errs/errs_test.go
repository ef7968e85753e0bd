package errs_test

import (
	"errors"
	"testing"

	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderRef", "123")

		assert.Equal(t, "orderRef", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderRef", "123", cause)

		assert.Equal(t, "orderRef", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderRef, ID is: 123 (cause: store connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pin", 1500, 100, 999)

		assert.Equal(t, "pin", err.ParamName)
		assert.Equal(t, 1500, err.Value)
		assert.Equal(t, 100, err.Min)
		assert.Equal(t, 999, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 1500 is pin, min value is 100, max value is 999", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("activeOrders", -5, 0, 100, cause)

		assert.Equal(t, "activeOrders", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is activeOrders, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("riderRef")

		assert.Equal(t, "riderRef", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: riderRef", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("riderRef", cause)

		assert.Equal(t, "riderRef", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: riderRef (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("stale document snapshot")
		err := errs.NewVersionIsInvalidErrorWithCause("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: stale document snapshot)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestOperationForbiddenError(t *testing.T) {
	t.Run("NewOperationForbiddenError", func(t *testing.T) {
		err := errs.NewOperationForbiddenError("order", "o-1")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "o-1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation forbidden: order o-1", err.Error())
		assert.Equal(t, errs.ErrOperationForbidden, err.Unwrap())
	})

	t.Run("NewOperationForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("not admin visible")
		err := errs.NewOperationForbiddenErrorWithCause("order", "o-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation forbidden: order o-1 (cause: not admin visible)", err.Error())
		assert.Equal(t, errs.ErrOperationForbidden, err.Unwrap())
	})
}

func TestStateIsInvalidError(t *testing.T) {
	t.Run("NewStateIsInvalidError", func(t *testing.T) {
		err := errs.NewStateIsInvalidError("rider", "not active")

		assert.Equal(t, "rider", err.ParamName)
		assert.Equal(t, "not active", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "state is invalid: rider is not active", err.Error())
		assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())
	})

	t.Run("NewStateIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("deactivated by admin")
		err := errs.NewStateIsInvalidErrorWithCause("rider", "not active", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "state is invalid: rider is not active (cause: deactivated by admin)", err.Error())
		assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())
	})
}

func TestDataIsMissingError(t *testing.T) {
	t.Run("NewDataIsMissingError", func(t *testing.T) {
		err := errs.NewDataIsMissingError("order", "has no client/address refs")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "has no client/address refs", err.Details)
		require.NoError(t, err.Cause)
		assert.Equal(t, "data is missing: order has no client/address refs", err.Error())
		assert.Equal(t, errs.ErrDataIsMissing, err.Unwrap())
	})

	t.Run("NewDataIsMissingErrorWithCause", func(t *testing.T) {
		cause := errors.New("legacy record")
		err := errs.NewDataIsMissingErrorWithCause("order", "has no client/address refs", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "data is missing: order has no client/address refs (cause: legacy record)", err.Error())
		assert.Equal(t, errs.ErrDataIsMissing, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrOperationForbidden)
		require.Error(t, errs.ErrStateIsInvalid)
		require.Error(t, errs.ErrDataIsMissing)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "operation forbidden", errs.ErrOperationForbidden.Error())
		assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
		assert.Equal(t, "data is missing", errs.ErrDataIsMissing.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderRef", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("status")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("pin", 1500, 100, 999)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("riderRef")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		versionInvalidErr := errs.NewVersionIsInvalidErrorWithCause("version", errors.New("test"))
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)

		forbiddenErr := errs.NewOperationForbiddenError("order", "o-1")
		require.ErrorIs(t, forbiddenErr, errs.ErrOperationForbidden)

		stateInvalidErr := errs.NewStateIsInvalidError("rider", "not active")
		require.ErrorIs(t, stateInvalidErr, errs.ErrStateIsInvalid)

		dataMissingErr := errs.NewDataIsMissingError("order", "has no client/address refs")
		require.ErrorIs(t, dataMissingErr, errs.ErrDataIsMissing)
	})
}
