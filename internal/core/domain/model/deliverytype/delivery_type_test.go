package deliverytype_test

import (
	"testing"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func distancePtr(t *testing.T, km float64) *kernel.Distance {
	t.Helper()
	d, err := kernel.DistanceFromFloat(km)
	require.NoError(t, err)
	return &d
}

func TestNewDeliveryType(t *testing.T) {
	t.Run("creates delivery type with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		dt, err := deliverytype.NewDeliveryType(
			id, "EXPRESS_2HR", "2-Hour Express", "Delivered within 2 hours",
			money(t, 30), distancePtr(t, 30), true, false, true, 1)
		require.NoError(t, err)

		assert.NoError(t, dt.Validate())
		assert.Equal(t, id, dt.ID())
		assert.Equal(t, "EXPRESS_2HR", dt.Code())
		assert.Equal(t, "2-Hour Express", dt.Name())
		assert.Equal(t, "Delivered within 2 hours", dt.Description())
		assert.Equal(t, "30", dt.BasePrice().String())
		require.NotNil(t, dt.MaxCoverageKm())
		assert.Equal(t, "30km", dt.MaxCoverageKm().String())
		assert.True(t, dt.OversizeHandledBySurcharge())
		assert.False(t, dt.RequiresAdminApproval())
		assert.True(t, dt.IsActive())
		assert.Equal(t, 1, dt.DisplayOrder())
	})

	t.Run("allows unlimited coverage", func(t *testing.T) {
		dt, err := deliverytype.NewDeliveryType(
			kernel.NewUUID(), "SAME_DAY", "Same Day", "",
			money(t, 10), nil, false, false, true, 2)
		require.NoError(t, err)

		assert.Nil(t, dt.MaxCoverageKm())
	})

	t.Run("fails with invalid id", func(t *testing.T) {
		_, err := deliverytype.NewDeliveryType(
			kernel.UUID{}, "SAME_DAY", "Same Day", "",
			money(t, 10), nil, false, false, true, 2)
		require.Error(t, err)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := deliverytype.NewDeliveryType(
			kernel.NewUUID(), "", "Same Day", "",
			money(t, 10), nil, false, false, true, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := deliverytype.NewDeliveryType(
			kernel.NewUUID(), "SAME_DAY", "", "",
			money(t, 10), nil, false, false, true, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with unconstructed base price", func(t *testing.T) {
		_, err := deliverytype.NewDeliveryType(
			kernel.NewUUID(), "SAME_DAY", "Same Day", "",
			kernel.Money{}, nil, false, false, true, 2)
		require.Error(t, err)
	})

	t.Run("collects all validation failures", func(t *testing.T) {
		_, err := deliverytype.NewDeliveryType(
			kernel.UUID{}, "", "", "",
			kernel.Money{}, nil, false, false, true, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreDeliveryType(t *testing.T) {
	t.Run("restores delivery type from persistence values", func(t *testing.T) {
		id := kernel.NewUUID()

		dt, err := deliverytype.RestoreDeliveryType(
			id, "OVERNIGHT", "Overnight", "Delivered next morning",
			money(t, 10), nil, false, true, true, 3)
		require.NoError(t, err)

		assert.NoError(t, dt.Validate())
		assert.Equal(t, "OVERNIGHT", dt.Code())
		assert.True(t, dt.RequiresAdminApproval())
	})

	t.Run("rejects corrupted rows", func(t *testing.T) {
		_, err := deliverytype.RestoreDeliveryType(
			kernel.NewUUID(), "", "Overnight", "",
			money(t, 10), nil, false, false, true, 3)
		require.Error(t, err)
	})
}

func TestDeliveryTypeValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var dt deliverytype.DeliveryType
		assert.ErrorIs(t, dt.Validate(), deliverytype.ErrDeliveryTypeIsNotConstructed)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var dt *deliverytype.DeliveryType
		assert.ErrorIs(t, dt.Validate(), deliverytype.ErrDeliveryTypeIsNotConstructed)
	})
}

func TestDeliveryTypeIsEqual(t *testing.T) {
	t.Run("compares by identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		first, err := deliverytype.NewDeliveryType(
			id, "SAME_DAY", "Same Day", "", money(t, 10), nil, false, false, true, 2)
		require.NoError(t, err)
		second, err := deliverytype.NewDeliveryType(
			id, "SAME_DAY", "Same Day Renamed", "", money(t, 12), nil, false, false, true, 2)
		require.NoError(t, err)
		third, err := deliverytype.NewDeliveryType(
			kernel.NewUUID(), "SAME_DAY", "Same Day", "", money(t, 10), nil, false, false, true, 2)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(third))
		assert.False(t, first.IsEqual(nil))
	})
}
