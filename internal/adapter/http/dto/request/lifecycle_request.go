package request

// ResolveRepairRequest is the customer decision on a PENDING repair.
// Approved is a pointer so that a missing field binds as invalid rather than
// as a denial.
type ResolveRepairRequest struct {
	Approved  *bool  `json:"approved" binding:"required"`
	DecidedBy string `json:"decided_by" binding:"required"`
	Notes     string `json:"notes,omitempty"`
}

// AssignRepairRequest is the manager assignment of a REQUESTED repair.
type AssignRepairRequest struct {
	AssignToTechnicianID string `json:"assign_to_technician_id" binding:"required"`
	AssignedByManagerID  string `json:"assigned_by_manager_id" binding:"required"`
}

// ProgressRepairRequest advances an APPROVED or IN_PROGRESS repair.
type ProgressRepairRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

// CreateInvoiceRequest invoices every completed, un-invoiced repair of the
// customer.
type CreateInvoiceRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
}
