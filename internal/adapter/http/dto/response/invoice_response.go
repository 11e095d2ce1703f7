package response

import (
	"time"

	"glassfleet/internal/domain/entities"
)

type InvoiceResponse struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customer_id"`
	RepairIDs         []string   `json:"repair_ids"`
	Total             string     `json:"total"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	ProviderPaymentID string     `json:"provider_payment_id,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		CustomerID:        inv.CustomerID,
		RepairIDs:         inv.RepairIDs,
		Total:             inv.Total.StringFixed(2),
		Status:            string(inv.Status),
		CreatedAt:         inv.CreatedAt,
		PaidAt:            inv.PaidAt,
		ProviderPaymentID: inv.ProviderPaymentID,
	}
}
