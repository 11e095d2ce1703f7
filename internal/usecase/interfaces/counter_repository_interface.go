package interfaces

import (
	"context"

	"glassfleet/internal/domain/entities"
)

// ICounterRepository reads the repair counters. A missing row reads as a
// zero-count counter with Version 0; CommitBatch then creates it with an
// attribute-not-exists condition so first writers still serialize.

type ICounterRepository interface {
	GetUnitCounter(ctx context.Context, customerID, unitNumber string) (entities.UnitRepairCounter, error)
	GetCustomerTotal(ctx context.Context, customerID string) (entities.CustomerRepairTotal, error)
}
