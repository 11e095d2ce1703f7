package usecase

import (
	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// PricingEngine computes the price of the Nth repair on a unit from the
// customer's pricing profile. It is a pure function over its inputs; the
// caller supplies the tier index (per-unit history) and the customer's
// lifetime repair count (all units) read under the batch transaction.
type PricingEngine struct{}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// PriceFor returns the tier price for tierIndex (0-based: "this is the Nth
// repair on this unit"). Once the index runs past the tier list, the last
// tier price repeats indefinitely. When the profile carries a volume discount
// and lifetimeCount has reached the threshold, the discount applies to the
// base tier price, rounded half-up to 2 decimal places.
func (e *PricingEngine) PriceFor(profile entities.CustomerPricingProfile, tierIndex int, lifetimeCount int) decimal.Decimal {
	tiers := profile.Tiers()

	idx := tierIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(tiers) {
		idx = len(tiers) - 1
	}
	base := tiers[idx]

	if profile.HasVolumeDiscount && lifetimeCount >= profile.VolumeDiscountThreshold {
		factor := decimalOne.Sub(profile.VolumeDiscountPercent.Div(decimalHundred))
		return base.Mul(factor).Round(2)
	}
	return base.Round(2)
}
