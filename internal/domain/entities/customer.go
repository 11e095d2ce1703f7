package entities

import "github.com/shopspring/decimal"

// ApprovalMode is the customer-level policy governing whether field-discovered
// repairs require explicit customer sign-off.
type ApprovalMode string

const (
	ApprovalModeAuto      ApprovalMode = "auto_approve"
	ApprovalModeRequire   ApprovalMode = "require_approval"
	ApprovalModeThreshold ApprovalMode = "unit_threshold"
)

// DefaultPricingTiers is the system-wide progressive price list. Index 0 is
// the first repair on a unit; the last tier repeats for every further repair.
var DefaultPricingTiers = []decimal.Decimal{
	decimal.NewFromInt(50),
	decimal.NewFromInt(40),
	decimal.NewFromInt(35),
	decimal.NewFromInt(30),
	decimal.NewFromInt(25),
}

// CustomerPricingProfile configures per-customer pricing. When
// UsesCustomPricing is false the default tier list applies regardless of
// CustomTiers.
type CustomerPricingProfile struct {
	CustomerID              string            `json:"customer_id"`
	UsesCustomPricing       bool              `json:"uses_custom_pricing"`
	CustomTiers             []decimal.Decimal `json:"custom_tiers,omitempty"`
	VolumeDiscountThreshold int               `json:"volume_discount_threshold,omitempty"`
	VolumeDiscountPercent   decimal.Decimal   `json:"volume_discount_percent,omitempty"`
	HasVolumeDiscount       bool              `json:"has_volume_discount"`
}

// Tiers resolves the effective tier list for this profile.
func (p CustomerPricingProfile) Tiers() []decimal.Decimal {
	if p.UsesCustomPricing && len(p.CustomTiers) > 0 {
		return p.CustomTiers
	}
	return DefaultPricingTiers
}

// CustomerApprovalPreference configures the initial-status policy for
// field-discovered repairs. UnitThreshold is meaningful only for
// ApprovalModeThreshold.
type CustomerApprovalPreference struct {
	CustomerID    string       `json:"customer_id"`
	Mode          ApprovalMode `json:"mode"`
	UnitThreshold int          `json:"unit_threshold,omitempty"`
}

// Customer is a fleet customer account with its pricing and approval policies.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	PricingProfile     CustomerPricingProfile     `json:"pricing_profile"`
	ApprovalPreference CustomerApprovalPreference `json:"approval_preference"`
}
