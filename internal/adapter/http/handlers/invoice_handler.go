package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "glassfleet/internal/adapter/http/dto/request"
	response "glassfleet/internal/adapter/http/dto/response"
	"glassfleet/internal/usecase"
	"glassfleet/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoicing of completed repairs.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// CreateInvoice groups the customer's completed, un-invoiced repairs.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRepairPayload.HTTPStatus, errInvalidRepairPayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), payload.CustomerID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// PayInvoice charges the invoice total through the payment gateway. The raw
// body is the provider payload; amount and reference are enforced server-side.
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[invoice][handler] read payload failed invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inv, err := h.usecase.Pay(c.Request.Context(), invoiceID, json.RawMessage(raw))
	if err != nil {
		log.Printf("[invoice][handler] pay failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetInvoice returns one invoice by id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToInvoice):
		return pkg.NewDomainErrorSimple("NOTHING_TO_INVOICE", "No completed repairs to invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_ERROR", "Payment gateway failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
