package interfaces

import (
	"context"
	"encoding/json"

	"glassfleet/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Create must put the invoice and stamp invoice_id on every referenced repair
// in one transaction; a repair that already carries an invoice_id fails the
// whole transaction.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id, providerPaymentID string, payload json.RawMessage) (entities.Invoice, error)
}
