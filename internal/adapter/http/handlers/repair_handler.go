package handlers

import (
	"errors"
	"log"
	"net/http"

	request "glassfleet/internal/adapter/http/dto/request"
	response "glassfleet/internal/adapter/http/dto/response"
	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase"
	"glassfleet/internal/usecase/interfaces"
	"glassfleet/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRepairPayload = pkg.NewDomainErrorSimple("INVALID_REPAIR_INPUT", "Invalid repair payload", http.StatusBadRequest)

// RepairHandler handles repair creation. Events returned by the use case are
// dispatched here, to the injected notifier; the engine itself fires no
// implicit hooks.

type RepairHandler struct {
	usecase  usecase.IRepairBatchUseCase
	notifier interfaces.INotifier
}

func NewRepairHandler(uc usecase.IRepairBatchUseCase, notifier interfaces.INotifier) *RepairHandler {
	return &RepairHandler{usecase: uc, notifier: notifier}
}

// CreateRepair creates one repair (the N=1 case of the batch algorithm).
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var payload request.CreateRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	origin, err := payload.ResolveOrigin()
	if err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateSingle(c.Request.Context(), usecase.CreateSingleCommand{
		CustomerID:   payload.CustomerID,
		TechnicianID: payload.TechnicianID,
		UnitNumber:   payload.UnitNumber,
		Origin:       origin,
		Break: usecase.BreakSpec{
			DamageType:     payload.DamageType,
			OverridePrice:  payload.OverridePrice,
			OverrideReason: payload.OverrideReason,
		},
	})
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.notifier != nil {
		h.notifier.RepairCreated(c.Request.Context(), result.Event)
	}
	c.JSON(http.StatusCreated, response.FromBatch(result.Repairs))
}

// CreateBatch creates N repairs sharing one batch id. All records commit
// together or the request fails with nothing persisted.
func (h *RepairHandler) CreateBatch(c *gin.Context) {
	var payload request.CreateBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	breaks := make([]usecase.BreakSpec, 0, len(payload.Breaks))
	for _, b := range payload.Breaks {
		breaks = append(breaks, usecase.BreakSpec{
			DamageType:     b.DamageType,
			OverridePrice:  b.OverridePrice,
			OverrideReason: b.OverrideReason,
		})
	}

	result, err := h.usecase.CreateBatch(c.Request.Context(), usecase.CreateBatchCommand{
		CustomerID:   payload.CustomerID,
		TechnicianID: payload.TechnicianID,
		UnitNumber:   payload.UnitNumber,
		Breaks:       breaks,
	})
	if err != nil {
		log.Printf("[repair][handler] batch create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.notifier != nil {
		h.notifier.RepairCreated(c.Request.Context(), result.Event)
	}
	c.JSON(http.StatusCreated, response.FromBatch(result.Repairs))
}

func mapRepairError(err error) *pkg.AppError {
	var transitionErr *entities.TransitionError
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrMissingDamageType),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidUnitNumber),
		errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidRepairID),
		errors.Is(err, usecase.ErrOverrideReasonRequired),
		errors.Is(err, usecase.ErrInvalidOverridePrice),
		errors.Is(err, usecase.ErrCustomerNotFound),
		errors.Is(err, usecase.ErrUnitNotFound),
		errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOverrideNotAllowed),
		errors.Is(err, usecase.ErrOverrideLimitExceeded),
		errors.Is(err, usecase.ErrNotRepairCustomer),
		errors.Is(err, usecase.ErrNotManager),
		errors.Is(err, usecase.ErrNotAssignedTechnician):
		return pkg.NewDomainErrorSimple("AUTHORIZATION_ERROR", "Not authorized", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRepairNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_NOT_FOUND", "Repair not found", http.StatusNotFound)
	case errors.As(err, &transitionErr), errors.Is(err, usecase.ErrRepairStatusConflict):
		return pkg.NewDomainErrorSimple("TRANSITION_ERROR", "Illegal status transition", http.StatusConflict)
	case errors.Is(err, interfaces.ErrCounterConflict):
		// Retryable: nothing was persisted, the caller may resubmit as-is.
		return pkg.NewDomainErrorSimple("CONCURRENCY_ERROR", "Concurrent submission for this unit, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
