package notify

import (
	"context"
	"log"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"
)

// LogNotifier is the default INotifier. Actual delivery (email/SMS) belongs
// to the surrounding application; this implementation records the events so
// local runs still show the outbound surface.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) RepairCreated(_ context.Context, ev entities.RepairCreatedEvent) {
	log.Printf("[notify] repair created batch_id=%s customer_id=%s unit=%s breaks=%d",
		ev.BatchID, ev.CustomerID, ev.UnitNumber, len(ev.Records))
}

func (n *LogNotifier) RepairStatusChanged(_ context.Context, ev entities.RepairStatusChangedEvent) {
	log.Printf("[notify] repair status changed repair_id=%s %s->%s actor=%s",
		ev.RepairID, ev.From, ev.To, ev.ActorID)
}
