package handlers

import (
	"context"
	"net/http"

	request "glassfleet/internal/adapter/http/dto/request"
	response "glassfleet/internal/adapter/http/dto/response"
	"glassfleet/internal/usecase"
	"glassfleet/internal/usecase/interfaces"
	"glassfleet/pkg"

	"github.com/gin-gonic/gin"
)

// LifecycleHandler handles post-creation status changes and the read surface.

type LifecycleHandler struct {
	usecase  usecase.IRepairLifecycleUseCase
	notifier interfaces.INotifier
}

func NewLifecycleHandler(uc usecase.IRepairLifecycleUseCase, notifier interfaces.INotifier) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc, notifier: notifier}
}

// ResolveRepair applies the customer decision to a PENDING repair.
func (h *LifecycleHandler) ResolveRepair(c *gin.Context) {
	var payload request.ResolveRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	h.applyTransition(c, func(ctx context.Context) (usecase.LifecycleResult, error) {
		return h.usecase.ResolvePending(ctx, usecase.ResolvePendingCommand{
			RepairID:  c.Param("id"),
			Approved:  *payload.Approved,
			DecidedBy: payload.DecidedBy,
			Notes:     payload.Notes,
		})
	})
}

// AssignRepair lets a manager assign a REQUESTED repair to a technician,
// approving it in the same step.
func (h *LifecycleHandler) AssignRepair(c *gin.Context) {
	var payload request.AssignRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	h.applyTransition(c, func(ctx context.Context) (usecase.LifecycleResult, error) {
		return h.usecase.AssignRequested(ctx, usecase.AssignRequestedCommand{
			RepairID:             c.Param("id"),
			AssignToTechnicianID: payload.AssignToTechnicianID,
			AssignedByManagerID:  payload.AssignedByManagerID,
		})
	})
}

func (h *LifecycleHandler) StartRepair(c *gin.Context) {
	h.progressRepair(c, h.usecase.Start)
}

func (h *LifecycleHandler) CompleteRepair(c *gin.Context) {
	h.progressRepair(c, h.usecase.Complete)
}

func (h *LifecycleHandler) progressRepair(
	c *gin.Context,
	op func(ctx context.Context, cmd usecase.ProgressCommand) (usecase.LifecycleResult, error),
) {
	var payload request.ProgressRepairRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	h.applyTransition(c, func(ctx context.Context) (usecase.LifecycleResult, error) {
		return op(ctx, usecase.ProgressCommand{
			RepairID:     c.Param("id"),
			TechnicianID: payload.TechnicianID,
		})
	})
}

func (h *LifecycleHandler) applyTransition(c *gin.Context, op func(ctx context.Context) (usecase.LifecycleResult, error)) {
	result, err := op(c.Request.Context())
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if h.notifier != nil {
		h.notifier.RepairStatusChanged(c.Request.Context(), result.Event)
	}
	c.JSON(http.StatusOK, response.FromRepair(result.Repair))
}

// GetRepair returns one repair by id.
func (h *LifecycleHandler) GetRepair(c *gin.Context) {
	repair, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepair(repair))
}

// GetBatch returns every repair sharing a batch id.
func (h *LifecycleHandler) GetBatch(c *gin.Context) {
	repairs, err := h.usecase.ListBatch(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(repairs))
}

// ListRepairs returns the repairs visible to the requesting actor. Exactly
// one of customer_id / technician_id is expected.
func (h *LifecycleHandler) ListRepairs(c *gin.Context) {
	customerID := c.Query("customer_id")
	technicianID := c.Query("technician_id")
	if (customerID == "") == (technicianID == "") {
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Provide customer_id or technician_id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	repairs, err := h.usecase.ListVisible(c.Request.Context(), usecase.Actor{
		CustomerID:   customerID,
		TechnicianID: technicianID,
	})
	if err != nil {
		appErr := mapRepairError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRepairs(repairs))
}
