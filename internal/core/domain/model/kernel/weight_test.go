package kernel_test

import (
	"testing"

	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight with positive kilograms", func(t *testing.T) {
		w, err := kernel.WeightFromFloat(5)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, "5kg", w.String())
	})

	t.Run("should accept fractional weights", func(t *testing.T) {
		w, err := kernel.NewWeight(decimal.NewFromFloat(0.25))

		require.NoError(t, err)
		assert.True(t, w.Kilograms().Equal(decimal.NewFromFloat(0.25)))
	})

	t.Run("should return error for zero weight", func(t *testing.T) {
		_, err := kernel.WeightFromFloat(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for negative weight", func(t *testing.T) {
		_, err := kernel.WeightFromFloat(-2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var w kernel.Weight

		require.ErrorIs(t, w.Validate(), errs.ErrValueIsRequired)
	})
}
