package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing outcome of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice groups a customer's completed repairs for billing. Invoicing lives
// outside the repair status machine: COMPLETED stays terminal and the repair
// only gets an invoice_id stamp.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Provider payload:
//   - PaymentPayloadRaw keeps the gateway response (JSON) for traceability.
type Invoice struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	RepairIDs  []string        `json:"repair_ids"`
	Total      decimal.Decimal `json:"total"`
	Status     InvoiceStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`

	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	PaymentPayloadRaw json.RawMessage `json:"payment_payload_raw,omitempty"`
}
