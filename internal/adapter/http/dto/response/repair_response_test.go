package response

import (
	"testing"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

func TestFromRepair(t *testing.T) {
	r := entities.RepairRecord{
		ID:                 "rep-1",
		CustomerID:         "cust-1",
		UnitNumber:         "unit-7",
		DamageType:         "star",
		Origin:             entities.OriginField,
		Status:             entities.RepairStatusApproved,
		Price:              decimal.RequireFromString("29.75"),
		BatchID:            "batch-1",
		BreakNumber:        3,
		TotalBreaksInBatch: 3,
	}

	resp := FromRepair(r)
	if resp.Price != "29.75" {
		t.Fatalf("price %s, want 29.75", resp.Price)
	}
	if resp.Status != "approved" || resp.Origin != "field" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromBatch(t *testing.T) {
	repairs := []entities.RepairRecord{
		{ID: "rep-1", BatchID: "batch-1", Price: decimal.NewFromInt(50)},
		{ID: "rep-2", BatchID: "batch-1", Price: decimal.NewFromInt(40)},
		{ID: "rep-3", BatchID: "batch-1", Price: decimal.NewFromInt(35)},
	}

	resp := FromBatch(repairs)
	if resp.BatchID != "batch-1" {
		t.Fatalf("batch id %s", resp.BatchID)
	}
	if resp.Total != "125.00" {
		t.Fatalf("total %s, want 125.00", resp.Total)
	}
	if len(resp.Repairs) != 3 {
		t.Fatalf("expected 3 repairs, got %d", len(resp.Repairs))
	}
}

func TestFromBatch_Empty(t *testing.T) {
	resp := FromBatch(nil)
	if resp.Total != "0.00" || len(resp.Repairs) != 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
