package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

// OverrideAuthorizer validates a manual price override against the acting
// technician's manager capability.
type OverrideAuthorizer struct{}

func NewOverrideAuthorizer() *OverrideAuthorizer {
	return &OverrideAuthorizer{}
}

// Authorize checks, in order: the reason accompanies the override, the actor
// carries the override capability, and the proposed price stays within the
// manager's approval limit. On success the proposed price replaces the
// computed tier price for that repair only; the unit's counter bookkeeping is
// untouched (an override changes price, never count).
func (a *OverrideAuthorizer) Authorize(actor entities.TechnicianProfile, proposedPrice decimal.Decimal, reason string) (decimal.Decimal, error) {
	if strings.TrimSpace(reason) == "" {
		return decimal.Decimal{}, ErrOverrideReasonRequired
	}
	if proposedPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidOverridePrice
	}
	if !actor.IsManager() || !actor.Manager.CanOverridePricing {
		return decimal.Decimal{}, ErrOverrideNotAllowed
	}
	if proposedPrice.GreaterThan(actor.Manager.ApprovalLimit) {
		return decimal.Decimal{}, ErrOverrideLimitExceeded
	}
	return proposedPrice.Round(2), nil
}
