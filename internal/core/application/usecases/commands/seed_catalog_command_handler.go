package commands

import (
	"context"
	"errors"
	"fmt"

	"helpii/internal/core/domain/model/deliverytype"
	"helpii/internal/core/domain/model/kernel"
	"helpii/internal/core/domain/model/pricingrule"
	"helpii/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// deliveryTypeSeed describes one delivery type and its rule set in plain
// literals; the handler converts it into domain aggregates.
type deliveryTypeSeed struct {
	code                       string
	name                       string
	description                string
	basePrice                  float64
	maxCoverageKm              *float64
	oversizeHandledBySurcharge bool
	displayOrder               int
	rules                      []pricingRuleSeed
}

type pricingRuleSeed struct {
	name              string
	weightMin         float64
	weightMax         *float64
	isOversizeRule    bool
	distanceThreshold *float64
	isShortTrip       *bool
	calculationType   pricingrule.CalculationType
	ratePerKm         *float64
	maxPrice          *float64
	flatTotal         *float64
	oversizeSurcharge *float64
	priority          int
}

// defaultCatalog returns the standard Auckland pricing structure:
//
//	2-Hour Express: $30 base + $5/km, overweight (>20kg) adds a $50 surcharge
//	Same Day:       small parcels priced per km with short/long trip rates,
//	                medium and heavy tiers flat, dedicated oversize rule at $70
//	Overnight:      $60 flat regardless of distance, oversize $70 flat
func defaultCatalog() []deliveryTypeSeed {
	return []deliveryTypeSeed{
		{
			code: "EXPRESS_2HR",
			name: "Helpii Express (2 Hour Urgent)",
			description: "Guaranteed delivery within 2 hours. $30 base + $5/km. " +
				"Conditions apply - traffic/weather delays may extend delivery time.",
			basePrice:                  30,
			maxCoverageKm:              f64(30),
			oversizeHandledBySurcharge: true,
			displayOrder:               1,
			rules: []pricingRuleSeed{
				{
					name:              "Express Overweight",
					weightMin:         20.01,
					calculationType:   pricingrule.PerKm,
					ratePerKm:         f64(5),
					oversizeSurcharge: f64(50),
					priority:          5,
				},
				{
					name:            "Express Standard",
					weightMin:       0,
					weightMax:       f64(20),
					calculationType: pricingrule.PerKm,
					ratePerKm:       f64(5),
					priority:        10,
				},
			},
		},
		{
			code:         "SAME_DAY",
			name:         "Helpii Same Day",
			description:  "Same day delivery within Auckland metro area.",
			basePrice:    10,
			displayOrder: 2,
			rules: []pricingRuleSeed{
				{
					name:            "Same Day Oversize",
					weightMin:       0,
					weightMax:       f64(20),
					isOversizeRule:  true,
					calculationType: pricingrule.Flat,
					flatTotal:       f64(70),
					priority:        1,
				},
				{
					name:              "Same Day Small Short Trip",
					weightMin:         0,
					weightMax:         f64(10),
					distanceThreshold: f64(10),
					isShortTrip:       b(true),
					calculationType:   pricingrule.PerKm,
					ratePerKm:         f64(3),
					priority:          10,
				},
				{
					name:              "Same Day Small Long Trip",
					weightMin:         0,
					weightMax:         f64(10),
					distanceThreshold: f64(10),
					isShortTrip:       b(false),
					calculationType:   pricingrule.PerKm,
					ratePerKm:         f64(2),
					priority:          11,
				},
				{
					name:              "Same Day Medium Short Trip",
					weightMin:         10.01,
					weightMax:         f64(20),
					distanceThreshold: f64(10),
					isShortTrip:       b(true),
					calculationType:   pricingrule.Flat,
					flatTotal:         f64(60),
					priority:          20,
				},
				{
					name:              "Same Day Medium Long Trip",
					weightMin:         10.01,
					weightMax:         f64(20),
					distanceThreshold: f64(10),
					isShortTrip:       b(false),
					calculationType:   pricingrule.Flat,
					flatTotal:         f64(70),
					priority:          21,
				},
				{
					name:            "Same Day Heavy",
					weightMin:       20.01,
					calculationType: pricingrule.Flat,
					flatTotal:       f64(110),
					priority:        30,
				},
			},
		},
		{
			code: "OVERNIGHT",
			name: "Helpii Overnight",
			description: "Overnight delivery - picked up today, delivered tomorrow. " +
				"Auckland metro only. Distance does not apply.",
			basePrice:    10,
			displayOrder: 3,
			rules: []pricingRuleSeed{
				{
					name:            "Overnight Oversize",
					weightMin:       0,
					isOversizeRule:  true,
					calculationType: pricingrule.Flat,
					flatTotal:       f64(70),
					priority:        1,
				},
				{
					name:            "Overnight Standard",
					weightMin:       0,
					calculationType: pricingrule.Flat,
					flatTotal:       f64(60),
					priority:        10,
				},
			},
		},
	}
}

func f64(v float64) *float64 {
	return &v
}

func b(v bool) *bool {
	return &v
}

// SeedCatalogCommandHandler installs the default pricing catalog.
// Each delivery type and its rules are created in a single transaction;
// a type whose code already exists is skipped entirely, leaving any
// operator-edited rules in place.
type SeedCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSeedCatalogCommandHandler creates a handler for catalog seeding.
// Requires a CatalogUoWFactory for transactional persistence of both
// delivery types and their rules.
func NewSeedCatalogCommandHandler(uowFactory CatalogUoWFactory) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seed command.
func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, seed := range defaultCatalog() {
		if err := h.seedDeliveryType(ctx, uow, seed); err != nil {
			return fmt.Errorf("seed delivery type %s: %w", seed.code, err)
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func (h *SeedCatalogCommandHandler) seedDeliveryType(ctx context.Context, uow CatalogUoW, seed deliveryTypeSeed) error {
	typeRepo := uow.DeliveryTypeRepository()

	if _, err := typeRepo.GetByCode(ctx, seed.code); err == nil {
		// Already installed; operator edits win over seed data.
		return nil
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	basePrice, err := kernel.MoneyFromFloat(seed.basePrice)
	if err != nil {
		return err
	}

	var maxCoverage *kernel.Distance
	if seed.maxCoverageKm != nil {
		d, distErr := kernel.DistanceFromFloat(*seed.maxCoverageKm)
		if distErr != nil {
			return distErr
		}
		maxCoverage = &d
	}

	dt, err := deliverytype.NewDeliveryType(
		kernel.NewUUID(), seed.code, seed.name, seed.description,
		basePrice, maxCoverage, seed.oversizeHandledBySurcharge,
		false, true, seed.displayOrder)
	if err != nil {
		return err
	}

	if err = typeRepo.Add(ctx, dt); err != nil {
		return err
	}

	ruleRepo := uow.PricingRuleRepository()
	for _, ruleSeed := range seed.rules {
		rule, ruleErr := buildSeedRule(dt.ID(), ruleSeed)
		if ruleErr != nil {
			return fmt.Errorf("rule %s: %w", ruleSeed.name, ruleErr)
		}
		if err = ruleRepo.Add(ctx, rule); err != nil {
			return err
		}
	}

	return nil
}

func buildSeedRule(deliveryTypeID kernel.UUID, seed pricingRuleSeed) (*pricingrule.PricingRule, error) {
	spec := pricingrule.RuleSpec{
		WeightMin:       decimal.NewFromFloat(seed.weightMin),
		IsOversizeRule:  seed.isOversizeRule,
		IsShortTrip:     seed.isShortTrip,
		CalculationType: seed.calculationType,
		IsActive:        true,
		Priority:        seed.priority,
	}

	if seed.weightMax != nil {
		d := decimal.NewFromFloat(*seed.weightMax)
		spec.WeightMax = &d
	}
	if seed.distanceThreshold != nil {
		d := decimal.NewFromFloat(*seed.distanceThreshold)
		spec.DistanceThreshold = &d
	}

	var err error
	if spec.RatePerKm, err = optionalMoney(seed.ratePerKm); err != nil {
		return nil, err
	}
	if spec.MaxPrice, err = optionalMoney(seed.maxPrice); err != nil {
		return nil, err
	}
	if spec.FlatTotal, err = optionalMoney(seed.flatTotal); err != nil {
		return nil, err
	}
	if spec.OversizeSurcharge, err = optionalMoney(seed.oversizeSurcharge); err != nil {
		return nil, err
	}

	return pricingrule.NewPricingRule(kernel.NewUUID(), deliveryTypeID, seed.name, spec)
}

func optionalMoney(v *float64) (*kernel.Money, error) {
	if v == nil {
		return nil, nil
	}
	m, err := kernel.MoneyFromFloat(*v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
