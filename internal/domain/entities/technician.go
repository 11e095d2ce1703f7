package entities

import "github.com/shopspring/decimal"

// Identity is the minimal person value shared by technician profiles. Roles
// are composed around it instead of subclassing a user model.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// ManagerAuthorization is the capability object attached only to technicians
// who carry manager duties. ApprovalLimit caps the dollar amount a manual
// price override may reach.
type ManagerAuthorization struct {
	CanOverridePricing bool            `json:"can_override_pricing"`
	ApprovalLimit      decimal.Decimal `json:"approval_limit"`
}

// TechnicianProfile is a field technician. Manager is nil for regular
// technicians.
//
// Storage model (DynamoDB):
//   - PK: id (Identity.ID)
type TechnicianProfile struct {
	Identity Identity              `json:"identity"`
	Manager  *ManagerAuthorization `json:"manager,omitempty"`
}

// IsManager reports whether this technician carries manager duties.
func (t TechnicianProfile) IsManager() bool {
	return t.Manager != nil
}

// TeamMembership is the directed manager -> technician relation. Team scope
// queries go through this relation rather than a mutable set on the manager.
//
// Storage model (DynamoDB):
//   - PK: manager_id, SK: member_id
type TeamMembership struct {
	ManagerID string `json:"manager_id"`
	MemberID  string `json:"member_id"`
}
