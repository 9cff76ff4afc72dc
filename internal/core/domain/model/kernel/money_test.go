package kernel_test

import (
	"encoding/json"
	"testing"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.MoneyFromString("12,50")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should treat zero value as zero rupees", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "749.97", mustMoney(t, "249.99").Times(3).String())
		assert.True(t, kernel.Rupees(10).Times(0).IsZero())
	})

	t.Run("should floor subtraction at zero", func(t *testing.T) {
		assert.True(t, kernel.Rupees(60).Sub(kernel.Rupees(100)).IsZero())
		assert.Equal(t, "540.00", kernel.Rupees(600).Sub(kernel.Rupees(60)).String())
	})

	t.Run("should compute percentages", func(t *testing.T) {
		assert.Equal(t, "60.00", kernel.Rupees(600).Percent(decimal.NewFromInt(10)).String())
	})

	t.Run("should pick the smaller amount", func(t *testing.T) {
		assert.Equal(t, "60.00", kernel.Rupees(100).Min(kernel.Rupees(60)).String())
		assert.Equal(t, "60.00", kernel.Rupees(60).Min(kernel.Rupees(100)).String())
	})
}

func TestMoney_Round(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"33.335", "33.34"},
		{"0.125", "0.13"},
	}
	for _, tc := range cases {
		t.Run("should round "+tc.in+" half up", func(t *testing.T) {
			assert.Equal(t, tc.want, mustMoney(t, tc.in).Round().String())
		})
	}
}

func TestMoney_JSON(t *testing.T) {
	t.Run("should encode as number", func(t *testing.T) {
		data, err := json.Marshal(map[string]kernel.Money{"total": kernel.Rupees(540)})

		require.NoError(t, err)
		assert.JSONEq(t, `{"total":540.00}`, string(data))
	})

	t.Run("should decode numbers and strings", func(t *testing.T) {
		var v struct {
			A kernel.Money `json:"a"`
			B kernel.Money `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":"7.25"}`), &v))

		assert.Equal(t, "12.50", v.A.String())
		assert.Equal(t, "7.25", v.B.String())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		var v struct {
			A kernel.Money `json:"a"`
		}
		require.Error(t, json.Unmarshal([]byte(`{"a":-1}`), &v))
	})
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "₹2900.00", kernel.Rupees(2900).Format())
}
