package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glassfleet/internal/adapter/http/handlers/mocks"
	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase"
	"glassfleet/internal/usecase/interfaces"
	mock_interfaces "glassfleet/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func lifecycleRouter(uc usecase.IRepairLifecycleUseCase, notifier interfaces.INotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLifecycleHandler(uc, notifier)
	r := gin.New()
	r.GET("/v1/repairs", h.ListRepairs)
	r.GET("/v1/repairs/:id", h.GetRepair)
	r.PATCH("/v1/repairs/:id/resolve", h.ResolveRepair)
	r.PATCH("/v1/repairs/:id/assign", h.AssignRepair)
	r.PATCH("/v1/repairs/:id/start", h.StartRepair)
	r.PATCH("/v1/repairs/:id/complete", h.CompleteRepair)
	r.GET("/v1/batches/:batch_id", h.GetBatch)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLifecycleHandler_ResolveRepair(t *testing.T) {
	t.Run("approved field is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/resolve", `{"decided_by":"cust-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("denial reaches the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		r := lifecycleRouter(uc, notifier)

		uc.EXPECT().ResolvePending(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.ResolvePendingCommand) (usecase.LifecycleResult, error) {
				if cmd.RepairID != "rep-1" || cmd.Approved || cmd.DecidedBy != "cust-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.LifecycleResult{
					Repair: entities.RepairRecord{ID: "rep-1", CustomerID: "cust-1", Status: entities.RepairStatusDenied},
					Event: entities.RepairStatusChangedEvent{
						RepairID: "rep-1", From: entities.RepairStatusPending, To: entities.RepairStatusDenied, ActorID: "cust-1",
					},
				}, nil
			},
		)
		notifier.EXPECT().RepairStatusChanged(gomock.Any(), gomock.Any())

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/resolve", `{"approved":false,"decided_by":"cust-1","notes":"too costly"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Status != "denied" {
			t.Fatalf("status %s", resp.Status)
		}
	})

	t.Run("wrong customer maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().ResolvePending(gomock.Any(), gomock.Any()).Return(usecase.LifecycleResult{}, usecase.ErrNotRepairCustomer)

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/resolve", `{"approved":true,"decided_by":"cust-2"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().ResolvePending(gomock.Any(), gomock.Any()).Return(usecase.LifecycleResult{},
			&entities.TransitionError{RepairID: "rep-1", From: entities.RepairStatusCompleted, To: entities.RepairStatusApproved})

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/resolve", `{"approved":true,"decided_by":"cust-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Code != "TRANSITION_ERROR" {
			t.Fatalf("unexpected code: %s", resp.Code)
		}
	})
}

func TestLifecycleHandler_AssignRepair(t *testing.T) {
	t.Run("assignment succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		r := lifecycleRouter(uc, notifier)

		uc.EXPECT().AssignRequested(gomock.Any(), usecase.AssignRequestedCommand{
			RepairID: "rep-1", AssignToTechnicianID: "tech-2", AssignedByManagerID: "mgr-1",
		}).Return(usecase.LifecycleResult{
			Repair: entities.RepairRecord{ID: "rep-1", TechnicianID: "tech-2", Status: entities.RepairStatusApproved},
		}, nil)
		notifier.EXPECT().RepairStatusChanged(gomock.Any(), gomock.Any())

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/assign", `{"assign_to_technician_id":"tech-2","assigned_by_manager_id":"mgr-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non-manager maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().AssignRequested(gomock.Any(), gomock.Any()).Return(usecase.LifecycleResult{}, usecase.ErrNotManager)

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/assign", `{"assign_to_technician_id":"tech-2","assigned_by_manager_id":"tech-1"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestLifecycleHandler_Progress(t *testing.T) {
	t.Run("start requires the assigned technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().Start(gomock.Any(), usecase.ProgressCommand{RepairID: "rep-1", TechnicianID: "tech-9"}).
			Return(usecase.LifecycleResult{}, usecase.ErrNotAssignedTechnician)

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/start", `{"technician_id":"tech-9"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("complete succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		r := lifecycleRouter(uc, notifier)

		uc.EXPECT().Complete(gomock.Any(), usecase.ProgressCommand{RepairID: "rep-1", TechnicianID: "tech-1"}).
			Return(usecase.LifecycleResult{
				Repair: entities.RepairRecord{ID: "rep-1", Status: entities.RepairStatusCompleted},
			}, nil)
		notifier.EXPECT().RepairStatusChanged(gomock.Any(), gomock.Any())

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/complete", `{"technician_id":"tech-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("lost conditional write maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().Start(gomock.Any(), gomock.Any()).Return(usecase.LifecycleResult{}, usecase.ErrRepairStatusConflict)

		w := doJSON(t, r, http.MethodPatch, "/v1/repairs/rep-1/start", `{"technician_id":"tech-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestLifecycleHandler_Reads(t *testing.T) {
	t.Run("get repair not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.RepairRecord{}, usecase.ErrRepairNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/repairs/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().ListBatch(gomock.Any(), "batch-1").Return(sampleBatchResult(2).Repairs, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/batches/batch-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			BatchID string `json:"batch_id"`
			Total   string `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.BatchID != "batch-1" || resp.Total != "90.00" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("list requires exactly one actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		for _, path := range []string{"/v1/repairs", "/v1/repairs?customer_id=cust-1&technician_id=tech-1"} {
			w := doJSON(t, r, http.MethodGet, path, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairLifecycleUseCase(ctrl)
		r := lifecycleRouter(uc, nil)

		uc.EXPECT().ListVisible(gomock.Any(), usecase.Actor{CustomerID: "cust-1"}).
			Return([]entities.RepairRecord{{ID: "rep-1", Status: entities.RepairStatusCompleted}}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/repairs?customer_id=cust-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
