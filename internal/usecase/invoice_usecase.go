package usecase

import (
	"context"
	"encoding/json"
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

// IInvoiceUseCase groups a customer's completed repairs into an invoice and
// settles it through the payment gateway. Invoicing never touches the repair
// status machine; COMPLETED stays terminal.

type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, customerID string) (entities.Invoice, error)
	Pay(ctx context.Context, invoiceID string, paymentPayload json.RawMessage) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	repairRepo  interfaces.IRepairRepository
	gateway     interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoiceRepo interfaces.IInvoiceRepository, repairRepo interfaces.IRepairRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, repairRepo: repairRepo, gateway: gateway}
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, customerID string) (entities.Invoice, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Invoice{}, ErrInvalidCustomerID
	}

	repairs, err := u.repairRepo.ListCompletedWithoutInvoice(ctx, customerID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(repairs) == 0 {
		return entities.Invoice{}, ErrNothingToInvoice
	}

	total := decimal.Zero
	repairIDs := make([]string, 0, len(repairs))
	for _, r := range repairs {
		total = total.Add(r.Price)
		repairIDs = append(repairIDs, r.ID)
	}

	inv := entities.Invoice{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		RepairIDs:  repairIDs,
		Total:      total.Round(2),
		Status:     entities.InvoiceStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := u.invoiceRepo.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created invoice_id=%s customer_id=%s repairs=%d total=%s",
		created.ID, customerID, len(repairIDs), created.Total.String())
	return created, nil
}

func (u *InvoiceUseCase) Pay(ctx context.Context, invoiceID string, paymentPayload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	inv, err := u.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	if len(paymentPayload) == 0 || !json.Valid(paymentPayload) {
		paymentPayload = json.RawMessage("{}")
	}
	// The invoice in DB is the source of truth for the amount; the gateway
	// uses external_reference to reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(paymentPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = inv.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", inv.ID)
		}
		reqMap["transaction_amount"] = inv.Total.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			paymentPayload = b
		}
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, paymentPayload)
	if err != nil {
		log.Printf("[invoice][usecase] gateway failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Invoice{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	log.Printf("[invoice][usecase] gateway success invoice_id=%s provider_payment_id=%s provider_status=%s",
		inv.ID, providerPaymentID, providerStatus)

	paid, err := u.invoiceRepo.MarkPaid(ctx, inv.ID, providerPaymentID, providerResp)
	if err != nil {
		return entities.Invoice{}, err
	}
	if paid.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return paid, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}
