package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"
)

// ResolvePendingCommand is the customer decision on a PENDING repair.
type ResolvePendingCommand struct {
	RepairID  string
	Approved  bool
	DecidedBy string
	Notes     string
}

// AssignRequestedCommand is the manager assignment of a REQUESTED repair to a
// technician. Assignment implies approval: the customer already asked for the
// work.
type AssignRequestedCommand struct {
	RepairID             string
	AssignToTechnicianID string
	AssignedByManagerID  string
}

// ProgressCommand advances an APPROVED or IN_PROGRESS repair; only the
// assigned technician may do so.
type ProgressCommand struct {
	RepairID     string
	TechnicianID string
}

// Actor identifies who is asking for a visibility-filtered listing. Exactly
// one of CustomerID / TechnicianID is expected to be set.
type Actor struct {
	CustomerID   string
	TechnicianID string
}

// LifecycleResult carries the updated record plus the transition event for
// the caller to dispatch.
type LifecycleResult struct {
	Repair entities.RepairRecord
	Event  entities.RepairStatusChangedEvent
}

// IRepairLifecycleUseCase owns every post-creation status change and the
// visibility rules around REQUESTED and PENDING repairs.

type IRepairLifecycleUseCase interface {
	ResolvePending(ctx context.Context, cmd ResolvePendingCommand) (LifecycleResult, error)
	AssignRequested(ctx context.Context, cmd AssignRequestedCommand) (LifecycleResult, error)
	Start(ctx context.Context, cmd ProgressCommand) (LifecycleResult, error)
	Complete(ctx context.Context, cmd ProgressCommand) (LifecycleResult, error)
	GetByID(ctx context.Context, id string) (entities.RepairRecord, error)
	ListBatch(ctx context.Context, batchID string) ([]entities.RepairRecord, error)
	ListVisible(ctx context.Context, actor Actor) ([]entities.RepairRecord, error)
}

type RepairLifecycleUseCase struct {
	repairRepo interfaces.IRepairRepository
	techRepo   interfaces.ITechnicianRepository
}

var _ IRepairLifecycleUseCase = (*RepairLifecycleUseCase)(nil)

func NewRepairLifecycleUseCase(repairRepo interfaces.IRepairRepository, techRepo interfaces.ITechnicianRepository) *RepairLifecycleUseCase {
	return &RepairLifecycleUseCase{repairRepo: repairRepo, techRepo: techRepo}
}

func (u *RepairLifecycleUseCase) ResolvePending(ctx context.Context, cmd ResolvePendingCommand) (LifecycleResult, error) {
	repair, err := u.loadRepair(ctx, cmd.RepairID)
	if err != nil {
		return LifecycleResult{}, err
	}
	if strings.TrimSpace(cmd.DecidedBy) != repair.CustomerID {
		return LifecycleResult{}, ErrNotRepairCustomer
	}

	target := entities.RepairStatusDenied
	if cmd.Approved {
		target = entities.RepairStatusApproved
	}
	if repair.Status != entities.RepairStatusPending || !repair.Status.CanTransitionTo(target) {
		return LifecycleResult{}, &entities.TransitionError{RepairID: repair.ID, From: repair.Status, To: target}
	}

	decision := &entities.ApprovalDecision{
		ID:        uuid.NewString(),
		RepairID:  repair.ID,
		Approved:  cmd.Approved,
		DecidedBy: repair.CustomerID,
		DecidedAt: time.Now().UTC(),
		Notes:     strings.TrimSpace(cmd.Notes),
	}
	return u.transition(ctx, repair, target, repair.CustomerID, interfaces.StatusUpdate{Decision: decision})
}

func (u *RepairLifecycleUseCase) AssignRequested(ctx context.Context, cmd AssignRequestedCommand) (LifecycleResult, error) {
	repair, err := u.loadRepair(ctx, cmd.RepairID)
	if err != nil {
		return LifecycleResult{}, err
	}

	manager, err := u.techRepo.GetByID(ctx, strings.TrimSpace(cmd.AssignedByManagerID))
	if err != nil {
		return LifecycleResult{}, err
	}
	if manager.Identity.ID == "" || !manager.IsManager() {
		return LifecycleResult{}, ErrNotManager
	}
	assignee, err := u.techRepo.GetByID(ctx, strings.TrimSpace(cmd.AssignToTechnicianID))
	if err != nil {
		return LifecycleResult{}, err
	}
	if assignee.Identity.ID == "" {
		return LifecycleResult{}, ErrTechnicianNotFound
	}

	if repair.Status != entities.RepairStatusRequested {
		return LifecycleResult{}, &entities.TransitionError{RepairID: repair.ID, From: repair.Status, To: entities.RepairStatusApproved}
	}
	return u.transition(ctx, repair, entities.RepairStatusApproved, manager.Identity.ID,
		interfaces.StatusUpdate{AssignTechnicianID: assignee.Identity.ID})
}

func (u *RepairLifecycleUseCase) Start(ctx context.Context, cmd ProgressCommand) (LifecycleResult, error) {
	return u.progress(ctx, cmd, entities.RepairStatusInProgress)
}

func (u *RepairLifecycleUseCase) Complete(ctx context.Context, cmd ProgressCommand) (LifecycleResult, error) {
	return u.progress(ctx, cmd, entities.RepairStatusCompleted)
}

func (u *RepairLifecycleUseCase) progress(ctx context.Context, cmd ProgressCommand, target entities.RepairStatus) (LifecycleResult, error) {
	repair, err := u.loadRepair(ctx, cmd.RepairID)
	if err != nil {
		return LifecycleResult{}, err
	}
	if strings.TrimSpace(cmd.TechnicianID) == "" || cmd.TechnicianID != repair.TechnicianID {
		return LifecycleResult{}, ErrNotAssignedTechnician
	}
	if !repair.Status.CanTransitionTo(target) {
		return LifecycleResult{}, &entities.TransitionError{RepairID: repair.ID, From: repair.Status, To: target}
	}
	return u.transition(ctx, repair, target, cmd.TechnicianID, interfaces.StatusUpdate{})
}

// transition performs the conditional write. An empty read-back means the
// repair moved between our read and the write; the caller sees a conflict,
// never a partial update.
func (u *RepairLifecycleUseCase) transition(
	ctx context.Context,
	repair entities.RepairRecord,
	target entities.RepairStatus,
	actorID string,
	upd interfaces.StatusUpdate,
) (LifecycleResult, error) {
	updated, err := u.repairRepo.UpdateStatus(ctx, repair.ID, repair.Status, target, upd)
	if err != nil {
		return LifecycleResult{}, err
	}
	if updated.ID == "" {
		return LifecycleResult{}, ErrRepairStatusConflict
	}
	log.Printf("[lifecycle][usecase] transition repair_id=%s %s->%s actor=%s", repair.ID, repair.Status, target, actorID)
	return LifecycleResult{
		Repair: updated,
		Event: entities.RepairStatusChangedEvent{
			RepairID:   updated.ID,
			CustomerID: updated.CustomerID,
			From:       repair.Status,
			To:         target,
			ActorID:    actorID,
			OccurredAt: time.Now().UTC(),
		},
	}, nil
}

func (u *RepairLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.RepairRecord, error) {
	return u.loadRepair(ctx, id)
}

func (u *RepairLifecycleUseCase) ListBatch(ctx context.Context, batchID string) ([]entities.RepairRecord, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return nil, ErrInvalidRepairID
	}
	return u.repairRepo.ListByBatchID(ctx, batchID)
}

// ListVisible applies the visibility rules:
//   - the owning customer sees everything of theirs except REQUESTED
//   - a technician sees their assigned repairs, minus PENDING and
//     REQUESTED ones
//   - a manager additionally sees the REQUESTED queue and their team
//     members' repairs (still minus PENDING)
func (u *RepairLifecycleUseCase) ListVisible(ctx context.Context, actor Actor) ([]entities.RepairRecord, error) {
	if customerID := strings.TrimSpace(actor.CustomerID); customerID != "" {
		repairs, err := u.repairRepo.ListByCustomerID(ctx, customerID)
		if err != nil {
			return nil, err
		}
		return filterStatuses(repairs, entities.RepairStatusRequested), nil
	}

	technicianID := strings.TrimSpace(actor.TechnicianID)
	if technicianID == "" {
		return nil, ErrInvalidTechnicianID
	}
	tech, err := u.techRepo.GetByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if tech.Identity.ID == "" {
		return nil, ErrTechnicianNotFound
	}

	repairs, err := u.repairRepo.ListByTechnicianID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if !tech.IsManager() {
		// A customer-origin request may already carry a technician
		// assignment; only managers see the REQUESTED queue.
		return filterStatuses(repairs, entities.RepairStatusPending, entities.RepairStatusRequested), nil
	}

	requested, err := u.repairRepo.ListRequested(ctx)
	if err != nil {
		return nil, err
	}
	repairs = append(repairs, requested...)

	memberIDs, err := u.techRepo.ListTeamMemberIDs(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	for _, memberID := range memberIDs {
		memberRepairs, err := u.repairRepo.ListByTechnicianID(ctx, memberID)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, memberRepairs...)
	}
	return dedupeByID(filterStatuses(repairs, entities.RepairStatusPending)), nil
}

func (u *RepairLifecycleUseCase) loadRepair(ctx context.Context, id string) (entities.RepairRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RepairRecord{}, ErrInvalidRepairID
	}
	repair, err := u.repairRepo.GetByID(ctx, id)
	if err != nil {
		return entities.RepairRecord{}, err
	}
	if repair.ID == "" {
		return entities.RepairRecord{}, ErrRepairNotFound
	}
	return repair, nil
}

func filterStatuses(repairs []entities.RepairRecord, hidden ...entities.RepairStatus) []entities.RepairRecord {
	out := make([]entities.RepairRecord, 0, len(repairs))
	for _, r := range repairs {
		drop := false
		for _, s := range hidden {
			if r.Status == s {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, r)
		}
	}
	return out
}

// dedupeByID drops repeated records while keeping first-seen order. The
// manager listing merges the own, requested and per-member queries, which
// can overlap when a manager is a member of their own team.
func dedupeByID(repairs []entities.RepairRecord) []entities.RepairRecord {
	seen := make(map[string]struct{}, len(repairs))
	out := make([]entities.RepairRecord, 0, len(repairs))
	for _, r := range repairs {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
