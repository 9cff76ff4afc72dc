package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"meatdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("should format param and id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("coupon", "WELCOME10")

		assert.Equal(t, "coupon", err.ParamName)
		assert.Equal(t, "WELCOME10", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: coupon WELCOME10", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should include cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("order", 42, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: param is: order, ID is: 42 (cause: record not found)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("should format without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("code")

		assert.Equal(t, "value is invalid: code", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("should format with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("code", errors.New("too short"))

		assert.Equal(t, "value is invalid: code (cause: too short)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("should format bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

		assert.Equal(t, "value is out of range: quantity is 0, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("should format bounds with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("value", 120, 0, 100, errors.New("percentage"))

		assert.Equal(t,
			"value is out of range: value is 120, min value is 0, max value is 100 (cause: percentage)",
			err.Error())
	})

	t.Run("should strip newlines from value", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("should format param", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("userID")

		assert.Equal(t, "value is required: userID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("should format param with cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("userID", errors.New("empty"))

		assert.Equal(t, "value is required: userID (cause: empty)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("should format reason", func(t *testing.T) {
		err := errs.NewConflictError("order is already assigned")

		assert.Equal(t, "conflict: order is already assigned", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should be found through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("accept order: %w", errs.NewConflictError("busy"))

		var conflict *errs.ConflictError
		require.ErrorAs(t, wrapped, &conflict)
		assert.Equal(t, "busy", conflict.Reason)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("cancel another customer's order")

	assert.Equal(t, "forbidden: cancel another customer's order", err.Error())
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestInsufficientStockError(t *testing.T) {
	t.Run("should include availability when known", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", 3, 1)

		assert.Equal(t, "insufficient stock: product p-1, requested 3, available 1", err.Error())
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
	})

	t.Run("should omit availability when unknown", func(t *testing.T) {
		err := errs.NewInsufficientStockError("p-1", 3, errs.UnknownAvailability)

		assert.Equal(t, "insufficient stock: product p-1, requested 3", err.Error())
	})
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("a")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("a")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("a", 1, 2, 3)))
	assert.False(t, errs.IsValidation(errs.NewConflictError("a")))
	assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("a", 1)))
}
