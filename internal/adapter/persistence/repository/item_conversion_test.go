package repository

import (
	"strings"
	"testing"
	"time"

	"glassfleet/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromRepairItem(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		rec := entities.RepairRecord{
			ID:           "rep-1",
			CustomerID:   "cust-1",
			TechnicianID: "tech-1",
			UnitNumber:   "42",
			DamageType:   "chip",
			Origin:       entities.OriginField,
			Status:       entities.RepairStatusApproved,
			Price:        decimal.NewFromInt(50),
			BatchID:      "batch-1",
			BreakNumber:  1,
			CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		}

		got, err := fromRepairItem(toRepairItem(rec))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != rec.ID || !got.Price.Equal(rec.Price) || !got.CreatedAt.Equal(rec.CreatedAt) {
			t.Fatalf("round trip mismatch: %+v", got)
		}
	})

	t.Run("corrupt price surfaces an error", func(t *testing.T) {
		it := toRepairItem(entities.RepairRecord{ID: "rep-1", CreatedAt: time.Now(), UpdatedAt: time.Now()})
		it.Price = "not-a-number"

		_, err := fromRepairItem(it)
		if err == nil {
			t.Fatal("expected an error for a corrupt price")
		}
		if !strings.Contains(err.Error(), "rep-1") {
			t.Fatalf("error should name the repair: %v", err)
		}
	})

	t.Run("corrupt timestamp surfaces an error", func(t *testing.T) {
		it := toRepairItem(entities.RepairRecord{ID: "rep-1", Price: decimal.NewFromInt(40), UpdatedAt: time.Now()})
		it.CreatedAt = "yesterday"

		if _, err := fromRepairItem(it); err == nil {
			t.Fatal("expected an error for a corrupt created_at")
		}
	})
}

func TestFromCustomerItem(t *testing.T) {
	t.Run("empty discount reads as zero", func(t *testing.T) {
		cust, err := fromCustomerItem(customerItem{ID: "cust-1", ApprovalMode: string(entities.ApprovalModeAuto)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cust.PricingProfile.VolumeDiscountPercent.IsZero() {
			t.Fatalf("expected zero discount, got %s", cust.PricingProfile.VolumeDiscountPercent)
		}
	})

	t.Run("corrupt discount surfaces an error", func(t *testing.T) {
		_, err := fromCustomerItem(customerItem{ID: "cust-1", VolumeDiscountPercent: "ten"})
		if err == nil {
			t.Fatal("expected an error for a corrupt discount")
		}
	})

	t.Run("corrupt tier surfaces an error", func(t *testing.T) {
		_, err := fromCustomerItem(customerItem{ID: "cust-1", CustomTiers: []string{"45", "oops"}})
		if err == nil {
			t.Fatal("expected an error for a corrupt tier")
		}
	})
}

func TestFromInvoiceItem(t *testing.T) {
	t.Run("corrupt total surfaces an error", func(t *testing.T) {
		it := invoiceItem{
			ID:        "inv-1",
			Total:     "NaN-ish",
			CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		}
		if _, err := fromInvoiceItem(it); err == nil {
			t.Fatal("expected an error for a corrupt total")
		}
	})

	t.Run("corrupt paid_at surfaces an error", func(t *testing.T) {
		it := invoiceItem{
			ID:        "inv-1",
			Total:     "100",
			CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
			PaidAt:    "last tuesday",
		}
		if _, err := fromInvoiceItem(it); err == nil {
			t.Fatal("expected an error for a corrupt paid_at")
		}
	})
}
