package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

var ErrInvalidOrigin = errors.New("invalid repair origin")

// BreakRequest is one damage point within a batch submission. OverridePrice
// accepts either a JSON number or a string to keep callers decimal-safe.
type BreakRequest struct {
	DamageType     string           `json:"damage_type" binding:"required"`
	OverridePrice  *decimal.Decimal `json:"override_price,omitempty"`
	OverrideReason string           `json:"override_reason,omitempty"`
}

// CreateRepairRequest creates a single repair. Origin decides the workflow
// entry: "customer" starts REQUESTED, "field" goes through the customer's
// approval policy. Empty origin defaults to field-discovered.
type CreateRepairRequest struct {
	CustomerID     string           `json:"customer_id" binding:"required"`
	TechnicianID   string           `json:"technician_id,omitempty"`
	UnitNumber     string           `json:"unit_number" binding:"required"`
	Origin         string           `json:"origin,omitempty"`
	DamageType     string           `json:"damage_type" binding:"required"`
	OverridePrice  *decimal.Decimal `json:"override_price,omitempty"`
	OverrideReason string           `json:"override_reason,omitempty"`
}

func (r CreateRepairRequest) ResolveOrigin() (entities.RepairOrigin, error) {
	switch strings.ToLower(strings.TrimSpace(r.Origin)) {
	case "", string(entities.OriginField):
		return entities.OriginField, nil
	case string(entities.OriginCustomer):
		return entities.OriginCustomer, nil
	}
	return "", ErrInvalidOrigin
}

// CreateBatchRequest creates N repairs for one unit in one technician
// session. Batches are always field-discovered.
type CreateBatchRequest struct {
	CustomerID   string         `json:"customer_id" binding:"required"`
	TechnicianID string         `json:"technician_id" binding:"required"`
	UnitNumber   string         `json:"unit_number" binding:"required"`
	Breaks       []BreakRequest `json:"breaks" binding:"required"`
}
