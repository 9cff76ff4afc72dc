package order_test

import (
	"testing"

	"meatdelivery/internal/core/domain/model/order"
	"meatdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should round trip wire names", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("shipped")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
	assert.Equal(t, "unknown", order.Status(42).String())
	assert.Equal(t, "out-for-delivery", order.OutForDelivery.String())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:        {order.Confirmed, order.Cancelled},
		order.Confirmed:      {order.Preparing, order.OutForDelivery, order.Cancelled},
		order.Preparing:      {order.OutForDelivery, order.Cancelled},
		order.OutForDelivery: {order.Delivered, order.Cancelled},
	}
	all := []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_Classification(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())

	assert.True(t, order.Confirmed.IsActive())
	assert.True(t, order.Preparing.IsActive())
	assert.True(t, order.OutForDelivery.IsActive())
	assert.False(t, order.Pending.IsActive())
	assert.False(t, order.Delivered.IsActive())
}

func TestStatus_Text(t *testing.T) {
	var s order.Status
	require.NoError(t, s.UnmarshalText([]byte("preparing")))
	assert.Equal(t, order.Preparing, s)

	text, err := order.Delivered.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "delivered", string(text))

	_, err = order.Unknown.MarshalText()
	require.Error(t, err)
}
