package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"glassfleet/internal/adapter/http/handlers/mocks"
	"glassfleet/internal/domain/entities"
	"glassfleet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func invoiceRouter(uc usecase.IInvoiceUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewInvoiceHandler(uc)
	r := gin.New()
	r.POST("/v1/invoices", h.CreateInvoice)
	r.GET("/v1/invoices/:invoice_id", h.GetInvoice)
	r.POST("/v1/invoices/:invoice_id/payments", h.PayInvoice)
	return r
}

func sampleInvoice() entities.Invoice {
	return entities.Invoice{
		ID:         "inv-1",
		CustomerID: "cust-1",
		RepairIDs:  []string{"rep-1", "rep-2"},
		Total:      decimal.RequireFromString("90"),
		Status:     entities.InvoiceStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("customer id required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().CreateInvoice(gomock.Any(), "cust-1").Return(sampleInvoice(), nil)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices", `{"customer_id":"cust-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			ID    string `json:"id"`
			Total string `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.ID != "inv-1" || resp.Total != "90.00" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("nothing to invoice maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().CreateInvoice(gomock.Any(), "cust-1").Return(entities.Invoice{}, usecase.ErrNothingToInvoice)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices", `{"customer_id":"cust-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_PayInvoice(t *testing.T) {
	t.Run("raw body is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().Pay(gomock.Any(), "inv-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.Invoice, error) {
				if !bytes.Contains(payload, []byte("pix")) {
					t.Fatalf("payload not forwarded: %s", payload)
				}
				paid := sampleInvoice()
				paid.Status = entities.InvoiceStatusPaid
				return paid, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices/inv-1/payments", `{"payment_method_id":"pix"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Status != "paid" {
			t.Fatalf("status %s", resp.Status)
		}
	})

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().Pay(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices/inv-1/payments", `{}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().Pay(gomock.Any(), "inv-1", gomock.Any()).Return(entities.Invoice{}, usecase.ErrPaymentGatewayFailed)

		w := doJSON(t, r, http.MethodPost, "/v1/invoices/inv-1/payments", `{}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := invoiceRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/invoices/ghost", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
