package interfaces

import (
	"context"

	"glassfleet/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer. GetByID
// returns a zero-ID customer when not found.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	UnitExists(ctx context.Context, customerID, unitNumber string) (bool, error)
}
