package commands_test

import (
	"testing"

	"helpii/internal/core/application/usecases/commands"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perKmRuleSpec(t *testing.T) pricingrule.RuleSpec {
	t.Helper()
	rate, err := kernel.MoneyFromFloat(5)
	require.NoError(t, err)
	return pricingrule.RuleSpec{
		WeightMin:       decimal.Zero,
		CalculationType: pricingrule.PerKm,
		RatePerKm:       &rate,
		IsActive:        true,
		Priority:        10,
	}
}

func TestNewCreatePricingRuleCommand(t *testing.T) {
	t.Run("creates command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreatePricingRuleCommand(
			"EXPRESS_2HR", "Express Standard", perKmRuleSpec(t))
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.NoError(t, cmd.RuleID().Validate())
		assert.Equal(t, "EXPRESS_2HR", cmd.DeliveryTypeCode())
		assert.Equal(t, "Express Standard", cmd.Name())
		assert.Equal(t, pricingrule.PerKm, cmd.Spec().CalculationType)
	})

	t.Run("fails with empty delivery type code", func(t *testing.T) {
		_, err := commands.NewCreatePricingRuleCommand("", "Express Standard", perKmRuleSpec(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeliveryTypeCodeIsRequired)
	})

	t.Run("fails with empty rule name", func(t *testing.T) {
		_, err := commands.NewCreatePricingRuleCommand("EXPRESS_2HR", "", perKmRuleSpec(t))
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrRuleNameIsRequired)
	})

	t.Run("generates unique rule identifiers", func(t *testing.T) {
		cmd1, err := commands.NewCreatePricingRuleCommand("SAME_DAY", "Rule A", perKmRuleSpec(t))
		require.NoError(t, err)
		cmd2, err := commands.NewCreatePricingRuleCommand("SAME_DAY", "Rule B", perKmRuleSpec(t))
		require.NoError(t, err)

		assert.NotEqual(t, cmd1.RuleID(), cmd2.RuleID())
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreatePricingRuleCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreatePricingRuleCommandIsNotConstructed)
	})
}
