package kernel_test

import (
	"testing"

	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Run("should normalise case and space", func(t *testing.T) {
		c, err := kernel.ParseCategory("  Chicken ")

		require.NoError(t, err)
		assert.Equal(t, kernel.CategoryChicken, c)
	})

	t.Run("should reject unknown categories", func(t *testing.T) {
		_, err := kernel.ParseCategory("vegetables")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
