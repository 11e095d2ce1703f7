package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase/interfaces"
)

// maxCounterAttempts bounds the optimistic retries on a counter version
// conflict before the retryable error is surfaced to the caller.
const maxCounterAttempts = 3

// BreakSpec describes one damage point within a creation request.
type BreakSpec struct {
	DamageType     string
	OverridePrice  *decimal.Decimal
	OverrideReason string
}

// CreateBatchCommand creates N repairs for one unit in one technician
// session. Batches are technician-only: every break is field-discovered.
type CreateBatchCommand struct {
	CustomerID   string
	TechnicianID string
	UnitNumber   string
	Breaks       []BreakSpec
}

// CreateSingleCommand creates one repair. Origin decides the initial-status
// path: customer-submitted requests start REQUESTED, field-discovered repairs
// go through the approval policy.
type CreateSingleCommand struct {
	CustomerID   string
	TechnicianID string
	UnitNumber   string
	Origin       entities.RepairOrigin
	Break        BreakSpec
}

// BatchResult carries the committed records plus the single grouped creation
// event for the caller to dispatch.
type BatchResult struct {
	Repairs []entities.RepairRecord
	Event   entities.RepairCreatedEvent
}

// IRepairBatchUseCase creates repairs with progressive pricing.
//
// Batch semantics:
//   - all N records commit together with the counter increments, or nothing
//     is persisted at all
//   - breakNumber and tier index assignment are strictly sequential within
//     the batch
//   - a single creation is exactly the N=1 case of the batch algorithm

type IRepairBatchUseCase interface {
	CreateBatch(ctx context.Context, cmd CreateBatchCommand) (BatchResult, error)
	CreateSingle(ctx context.Context, cmd CreateSingleCommand) (BatchResult, error)
}

type RepairBatchUseCase struct {
	repairRepo   interfaces.IRepairRepository
	counterRepo  interfaces.ICounterRepository
	customerRepo interfaces.ICustomerRepository
	techRepo     interfaces.ITechnicianRepository
	pricing      *PricingEngine
	policy       *ApprovalPolicyEvaluator
	overrides    *OverrideAuthorizer
}

var _ IRepairBatchUseCase = (*RepairBatchUseCase)(nil)

func NewRepairBatchUseCase(
	repairRepo interfaces.IRepairRepository,
	counterRepo interfaces.ICounterRepository,
	customerRepo interfaces.ICustomerRepository,
	techRepo interfaces.ITechnicianRepository,
) *RepairBatchUseCase {
	return &RepairBatchUseCase{
		repairRepo:   repairRepo,
		counterRepo:  counterRepo,
		customerRepo: customerRepo,
		techRepo:     techRepo,
		pricing:      NewPricingEngine(),
		policy:       NewApprovalPolicyEvaluator(),
		overrides:    NewOverrideAuthorizer(),
	}
}

func (u *RepairBatchUseCase) CreateBatch(ctx context.Context, cmd CreateBatchCommand) (BatchResult, error) {
	return u.create(ctx, entities.OriginField, cmd.CustomerID, cmd.TechnicianID, cmd.UnitNumber, cmd.Breaks)
}

func (u *RepairBatchUseCase) CreateSingle(ctx context.Context, cmd CreateSingleCommand) (BatchResult, error) {
	origin := cmd.Origin
	if origin == "" {
		origin = entities.OriginField
	}
	return u.create(ctx, origin, cmd.CustomerID, cmd.TechnicianID, cmd.UnitNumber, []BreakSpec{cmd.Break})
}

func (u *RepairBatchUseCase) create(
	ctx context.Context,
	origin entities.RepairOrigin,
	customerID, technicianID, unitNumber string,
	breaks []BreakSpec,
) (BatchResult, error) {
	customerID = strings.TrimSpace(customerID)
	technicianID = strings.TrimSpace(technicianID)
	unitNumber = strings.TrimSpace(unitNumber)

	if customerID == "" {
		return BatchResult{}, ErrInvalidCustomerID
	}
	if unitNumber == "" {
		return BatchResult{}, ErrInvalidUnitNumber
	}
	if len(breaks) == 0 {
		return BatchResult{}, ErrEmptyBatch
	}
	// Field-discovered repairs need the submitting technician; a customer
	// request may arrive before any technician is involved.
	if technicianID == "" && origin == entities.OriginField {
		return BatchResult{}, ErrInvalidTechnicianID
	}
	for _, b := range breaks {
		if strings.TrimSpace(b.DamageType) == "" {
			return BatchResult{}, ErrMissingDamageType
		}
	}

	customer, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return BatchResult{}, err
	}
	if customer.ID == "" {
		return BatchResult{}, ErrCustomerNotFound
	}
	ok, err := u.customerRepo.UnitExists(ctx, customerID, unitNumber)
	if err != nil {
		return BatchResult{}, err
	}
	if !ok {
		return BatchResult{}, ErrUnitNotFound
	}

	var tech entities.TechnicianProfile
	if technicianID != "" {
		tech, err = u.techRepo.GetByID(ctx, technicianID)
		if err != nil {
			return BatchResult{}, err
		}
		if tech.Identity.ID == "" {
			return BatchResult{}, ErrTechnicianNotFound
		}
	}

	for attempt := 1; attempt <= maxCounterAttempts; attempt++ {
		result, err := u.tryCommit(ctx, origin, customer, tech, technicianID, unitNumber, breaks)
		if errors.Is(err, interfaces.ErrCounterConflict) {
			log.Printf("[batch][usecase] counter conflict customer_id=%s unit=%s attempt=%d", customerID, unitNumber, attempt)
			continue
		}
		if err != nil {
			log.Printf("[batch][usecase] create failed customer_id=%s unit=%s err=%v", customerID, unitNumber, err)
			return BatchResult{}, err
		}
		log.Printf("[batch][usecase] create success customer_id=%s unit=%s batch_id=%s breaks=%d",
			customerID, unitNumber, result.Event.BatchID, len(result.Repairs))
		return result, nil
	}
	return BatchResult{}, interfaces.ErrCounterConflict
}

// tryCommit prices and stages the whole batch against one counter snapshot,
// then commits it in a single transaction conditioned on that snapshot.
func (u *RepairBatchUseCase) tryCommit(
	ctx context.Context,
	origin entities.RepairOrigin,
	customer entities.Customer,
	tech entities.TechnicianProfile,
	technicianID, unitNumber string,
	breaks []BreakSpec,
) (BatchResult, error) {
	unitCounter, err := u.counterRepo.GetUnitCounter(ctx, customer.ID, unitNumber)
	if err != nil {
		return BatchResult{}, err
	}
	total, err := u.counterRepo.GetCustomerTotal(ctx, customer.ID)
	if err != nil {
		return BatchResult{}, err
	}

	n := len(breaks)
	batchID := uuid.NewString()
	now := time.Now().UTC()
	records := make([]entities.RepairRecord, 0, n)

	for i, spec := range breaks {
		tierIndex := unitCounter.Count + i
		lifetime := total.Count + i

		var price decimal.Decimal
		overridden := spec.OverridePrice != nil
		if overridden {
			price, err = u.overrides.Authorize(tech, *spec.OverridePrice, spec.OverrideReason)
			if err != nil {
				return BatchResult{}, err
			}
		} else {
			price = u.pricing.PriceFor(customer.PricingProfile, tierIndex, lifetime)
		}

		status := entities.RepairStatusRequested
		if origin == entities.OriginField {
			status = u.policy.InitialStatus(customer.ApprovalPreference, i+1)
		}
		if !status.IsLegalInitial(origin) {
			return BatchResult{}, fmt.Errorf("illegal initial status %s for %s repair", status, origin)
		}

		records = append(records, entities.RepairRecord{
			ID:                 uuid.NewString(),
			CustomerID:         customer.ID,
			TechnicianID:       technicianID,
			UnitNumber:         unitNumber,
			DamageType:         strings.TrimSpace(spec.DamageType),
			Origin:             origin,
			Status:             status,
			Price:              price,
			PriceOverridden:    overridden,
			OverrideReason:     strings.TrimSpace(spec.OverrideReason),
			BatchID:            batchID,
			BreakNumber:        i + 1,
			TotalBreaksInBatch: n,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	// The commit carries the read versions; the repository conditions on them
	// so that a concurrent submission for the same unit loses cleanly.
	unitCounter.Count += n
	total.Count += n
	if err := u.repairRepo.CommitBatch(ctx, records, unitCounter, total); err != nil {
		return BatchResult{}, err
	}

	return BatchResult{
		Repairs: records,
		Event: entities.RepairCreatedEvent{
			BatchID:    batchID,
			CustomerID: customer.ID,
			UnitNumber: unitNumber,
			Records:    records,
			OccurredAt: now,
		},
	}, nil
}
