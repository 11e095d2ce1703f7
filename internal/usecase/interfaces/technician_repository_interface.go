package interfaces

import (
	"context"

	"glassfleet/internal/domain/entities"
)

// ITechnicianRepository abstracts DynamoDB persistence for technician
// profiles and the manager -> member team relation.

type ITechnicianRepository interface {
	GetByID(ctx context.Context, id string) (entities.TechnicianProfile, error)
	ListTeamMemberIDs(ctx context.Context, managerID string) ([]string, error)
}
