package response

import (
	"time"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

// RepairResponse renders one repair. Price is serialized as a decimal string
// so clients never see binary-float artifacts.
type RepairResponse struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	TechnicianID       string    `json:"technician_id,omitempty"`
	UnitNumber         string    `json:"unit_number"`
	DamageType         string    `json:"damage_type"`
	Origin             string    `json:"origin"`
	Status             string    `json:"status"`
	Price              string    `json:"price"`
	PriceOverridden    bool      `json:"price_overridden"`
	OverrideReason     string    `json:"override_reason,omitempty"`
	BatchID            string    `json:"batch_id"`
	BreakNumber        int       `json:"break_number"`
	TotalBreaksInBatch int       `json:"total_breaks_in_batch"`
	InvoiceID          string    `json:"invoice_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromRepair(r entities.RepairRecord) RepairResponse {
	return RepairResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		TechnicianID:       r.TechnicianID,
		UnitNumber:         r.UnitNumber,
		DamageType:         r.DamageType,
		Origin:             string(r.Origin),
		Status:             string(r.Status),
		Price:              r.Price.StringFixed(2),
		PriceOverridden:    r.PriceOverridden,
		OverrideReason:     r.OverrideReason,
		BatchID:            r.BatchID,
		BreakNumber:        r.BreakNumber,
		TotalBreaksInBatch: r.TotalBreaksInBatch,
		InvoiceID:          r.InvoiceID,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// BatchResponse renders a whole creation result, including the decimal batch
// total.
type BatchResponse struct {
	BatchID string           `json:"batch_id"`
	Total   string           `json:"total"`
	Repairs []RepairResponse `json:"repairs"`
}

func FromBatch(repairs []entities.RepairRecord) BatchResponse {
	resp := BatchResponse{Repairs: make([]RepairResponse, 0, len(repairs))}
	total := decimal.Zero
	for _, r := range repairs {
		resp.BatchID = r.BatchID
		total = total.Add(r.Price)
		resp.Repairs = append(resp.Repairs, FromRepair(r))
	}
	resp.Total = total.StringFixed(2)
	return resp
}

func FromRepairs(repairs []entities.RepairRecord) []RepairResponse {
	out := make([]RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, FromRepair(r))
	}
	return out
}
