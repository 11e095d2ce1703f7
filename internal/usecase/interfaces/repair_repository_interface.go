package interfaces

import (
	"context"
	"errors"

	"glassfleet/internal/domain/entities"
)

// ErrCounterConflict is returned by IRepairRepository.CommitBatch when the
// counter version read before pricing no longer matches at commit time, i.e.
// a concurrent submission for the same (customer, unit) won the race. Nothing
// is persisted; the caller may re-read and retry.
var ErrCounterConflict = errors.New("repair counter version conflict")

// StatusUpdate carries the optional side effects of a status transition.
type StatusUpdate struct {
	// AssignTechnicianID, when non-empty, is written to the repair alongside
	// the status (manager assignment of a REQUESTED repair).
	AssignTechnicianID string
	// Decision, when non-nil, is persisted atomically with the transition
	// (customer resolution of a PENDING repair).
	Decision *entities.ApprovalDecision
}

// IRepairRepository abstracts DynamoDB persistence for RepairRecord.
//
// CommitBatch must be all-or-nothing: the N repair rows, the per-unit counter
// and the customer lifetime total commit together or not at all. The counter
// writes are conditional on the versions embedded in the passed counter
// values; on a version mismatch the implementation returns ErrCounterConflict
// and persists nothing.
//
// UpdateStatus must be conditional on the expected current status and return a
// zero record (nil error) when the condition fails, mirroring the read-back
// idiom used elsewhere: the use case decides what a miss means.

type IRepairRepository interface {
	CommitBatch(ctx context.Context, repairs []entities.RepairRecord, unit entities.UnitRepairCounter, total entities.CustomerRepairTotal) error
	GetByID(ctx context.Context, id string) (entities.RepairRecord, error)
	ListByBatchID(ctx context.Context, batchID string) ([]entities.RepairRecord, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.RepairRecord, error)
	ListByTechnicianID(ctx context.Context, technicianID string) ([]entities.RepairRecord, error)
	ListRequested(ctx context.Context) ([]entities.RepairRecord, error)
	ListCompletedWithoutInvoice(ctx context.Context, customerID string) ([]entities.RepairRecord, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.RepairStatus, upd StatusUpdate) (entities.RepairRecord, error)
}
