package interfaces

import (
	"context"

	"glassfleet/internal/domain/entities"
)

// INotifier is the narrow seam to the notification collaborator. Delivery
// transport (email/SMS/webhooks) is outside this service; implementations
// receive the already-committed domain events and own everything after that.
type INotifier interface {
	RepairCreated(ctx context.Context, ev entities.RepairCreatedEvent)
	RepairStatusChanged(ctx context.Context, ev entities.RepairStatusChangedEvent)
}
