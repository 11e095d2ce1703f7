package usecase

import "glassfleet/internal/domain/entities"

// ApprovalPolicyEvaluator decides the initial status of a field-discovered
// repair from the customer's approval preference. Customer-originated
// requests never pass through here; they always start REQUESTED.
type ApprovalPolicyEvaluator struct{}

func NewApprovalPolicyEvaluator() *ApprovalPolicyEvaluator {
	return &ApprovalPolicyEvaluator{}
}

// InitialStatus returns PENDING or APPROVED for the break at the 1-based
// position within the current batch. For UNIT_THRESHOLD the position counter
// restarts at 1 for every batch; it is not cumulative across submissions.
// An unknown mode falls back to requiring approval.
func (e *ApprovalPolicyEvaluator) InitialStatus(pref entities.CustomerApprovalPreference, breakPositionInBatch int) entities.RepairStatus {
	switch pref.Mode {
	case entities.ApprovalModeAuto:
		return entities.RepairStatusApproved
	case entities.ApprovalModeRequire:
		return entities.RepairStatusPending
	case entities.ApprovalModeThreshold:
		if breakPositionInBatch <= pref.UnitThreshold {
			return entities.RepairStatusApproved
		}
		return entities.RepairStatusPending
	}
	return entities.RepairStatusPending
}
