package usecase

import "errors"

// Sentinel errors surfaced by the repair use cases. Handlers map them onto
// the HTTP error envelope; nothing here ever renders user-facing text.
var (
	// Validation: detected before any mutation.
	ErrEmptyBatch              = errors.New("batch must contain at least one break")
	ErrMissingDamageType       = errors.New("missing damage type")
	ErrInvalidCustomerID       = errors.New("invalid customer id")
	ErrInvalidUnitNumber       = errors.New("invalid unit number")
	ErrInvalidTechnicianID     = errors.New("invalid technician id")
	ErrInvalidRepairID         = errors.New("invalid repair id")
	ErrOverrideReasonRequired  = errors.New("override reason is required")
	ErrInvalidOverridePrice    = errors.New("invalid override price")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrUnitNotFound            = errors.New("unit not found")
	ErrTechnicianNotFound      = errors.New("technician not found")
	ErrRepairNotFound          = errors.New("repair not found")

	// Authorization: the actor may not perform the operation.
	ErrOverrideNotAllowed     = errors.New("technician is not authorized to override pricing")
	ErrOverrideLimitExceeded  = errors.New("override price exceeds manager approval limit")
	ErrNotRepairCustomer      = errors.New("only the owning customer may resolve a pending repair")
	ErrNotManager             = errors.New("only a manager may assign a requested repair")
	ErrNotAssignedTechnician  = errors.New("only the assigned technician may progress this repair")

	// Transition conflict: the repair moved between read and conditional write.
	ErrRepairStatusConflict = errors.New("repair status changed concurrently")

	// Invoicing.
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrNothingToInvoice     = errors.New("no completed repairs to invoice")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
)
