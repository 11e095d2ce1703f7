package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus represents the lifecycle of a windshield repair.
//
// Domain notes:
//   - REQUESTED is the entry state for customer-submitted requests and is only
//     visible to managers until assigned.
//   - PENDING repairs await the owning customer's decision and are hidden from
//     every technician (managers included) until resolved.
//   - DENIED and COMPLETED are terminal.

type RepairStatus string

const (
	RepairStatusRequested  RepairStatus = "requested"
	RepairStatusPending    RepairStatus = "pending"
	RepairStatusApproved   RepairStatus = "approved"
	RepairStatusInProgress RepairStatus = "in_progress"
	RepairStatusCompleted  RepairStatus = "completed"
	RepairStatusDenied     RepairStatus = "denied"
)

// RepairOrigin distinguishes who initiated the repair.
type RepairOrigin string

const (
	OriginCustomer RepairOrigin = "customer"
	OriginField    RepairOrigin = "field"
)

// repairTransitions is the closed transition table. Anything not listed here
// is illegal and rejected with a TransitionError.
var repairTransitions = map[RepairStatus]map[RepairStatus]bool{
	RepairStatusRequested:  {RepairStatusApproved: true},
	RepairStatusPending:    {RepairStatusApproved: true, RepairStatusDenied: true},
	RepairStatusApproved:   {RepairStatusInProgress: true},
	RepairStatusInProgress: {RepairStatusCompleted: true},
}

// CanTransitionTo reports whether s -> next is a legal transition.
func (s RepairStatus) CanTransitionTo(next RepairStatus) bool {
	return repairTransitions[s][next]
}

// Terminal reports whether no further transition is accepted from s.
func (s RepairStatus) Terminal() bool {
	return len(repairTransitions[s]) == 0
}

// IsLegalInitial reports whether a repair may be created directly in status s
// for the given origin. Customer-originated repairs always start REQUESTED;
// field-discovered repairs start PENDING or APPROVED depending on the
// customer's approval policy. No repair is ever born IN_PROGRESS or COMPLETED.
func (s RepairStatus) IsLegalInitial(origin RepairOrigin) bool {
	switch origin {
	case OriginCustomer:
		return s == RepairStatusRequested
	case OriginField:
		return s == RepairStatusPending || s == RepairStatusApproved
	}
	return false
}

// TransitionError signals an attempted state change outside the transition
// table. The repair state is left unchanged.
type TransitionError struct {
	RepairID string
	From     RepairStatus
	To       RepairStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal repair transition %s -> %s (repair %s)", e.From, e.To, e.RepairID)
}

// RepairRecord is one repaired (or to-be-repaired) break on a unit's
// windshield, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (batch_id-index): batch_id
//
// Monetary representation:
//   - Price is fixed at creation (tier price or authorized override) and is
//     never mutated afterwards.
type RepairRecord struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	TechnicianID      string          `json:"technician_id"`
	UnitNumber        string          `json:"unit_number"`
	DamageType        string          `json:"damage_type"`
	Origin            RepairOrigin    `json:"origin"`
	Status            RepairStatus    `json:"status"`
	Price             decimal.Decimal `json:"price"`
	PriceOverridden   bool            `json:"price_overridden"`
	OverrideReason    string          `json:"override_reason,omitempty"`
	BatchID           string          `json:"batch_id"`
	BreakNumber       int             `json:"break_number"`
	TotalBreaksInBatch int            `json:"total_breaks_in_batch"`
	InvoiceID         string          `json:"invoice_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ApprovalDecision records how a PENDING repair was resolved by the customer.
type ApprovalDecision struct {
	ID        string    `json:"id"`
	RepairID  string    `json:"repair_id"`
	Approved  bool      `json:"approved"`
	DecidedBy string    `json:"decided_by"`
	DecidedAt time.Time `json:"decided_at"`
	Notes     string    `json:"notes,omitempty"`
}
