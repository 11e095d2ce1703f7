package entities

import "time"

// Domain events are returned by use cases and dispatched explicitly by the
// caller. There are no implicit signal hooks: whoever invokes the operation
// owns delivery.

// RepairCreatedEvent is emitted once per creation call. A batch of N breaks
// produces one event carrying all N records, not N events.
type RepairCreatedEvent struct {
	BatchID    string         `json:"batch_id"`
	CustomerID string         `json:"customer_id"`
	UnitNumber string         `json:"unit_number"`
	Records    []RepairRecord `json:"records"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// RepairStatusChangedEvent is emitted on every legal status transition.
type RepairStatusChangedEvent struct {
	RepairID   string       `json:"repair_id"`
	CustomerID string       `json:"customer_id"`
	From       RepairStatus `json:"from"`
	To         RepairStatus `json:"to"`
	ActorID    string       `json:"actor_id"`
	OccurredAt time.Time    `json:"occurred_at"`
}
