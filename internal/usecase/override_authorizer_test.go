package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

func TestOverrideAuthorizer_Authorize(t *testing.T) {
	auth := NewOverrideAuthorizer()

	manager := entities.TechnicianProfile{
		Identity: entities.Identity{ID: "mgr-1", Name: "Dana"},
		Manager: &entities.ManagerAuthorization{
			CanOverridePricing: true,
			ApprovalLimit:      decimal.NewFromInt(150),
		},
	}

	t.Run("reason required", func(t *testing.T) {
		_, err := auth.Authorize(manager, decimal.NewFromInt(60), "   ")
		if !errors.Is(err, ErrOverrideReasonRequired) {
			t.Fatalf("expected ErrOverrideReasonRequired, got %v", err)
		}
	})

	t.Run("price must be positive", func(t *testing.T) {
		_, err := auth.Authorize(manager, decimal.Zero, "goodwill")
		if !errors.Is(err, ErrInvalidOverridePrice) {
			t.Fatalf("expected ErrInvalidOverridePrice, got %v", err)
		}
	})

	t.Run("regular technician rejected", func(t *testing.T) {
		tech := entities.TechnicianProfile{Identity: entities.Identity{ID: "tech-1"}}
		_, err := auth.Authorize(tech, decimal.NewFromInt(60), "goodwill")
		if !errors.Is(err, ErrOverrideNotAllowed) {
			t.Fatalf("expected ErrOverrideNotAllowed, got %v", err)
		}
	})

	t.Run("manager without the capability rejected", func(t *testing.T) {
		mgr := entities.TechnicianProfile{
			Identity: entities.Identity{ID: "mgr-2"},
			Manager:  &entities.ManagerAuthorization{ApprovalLimit: decimal.NewFromInt(500)},
		}
		_, err := auth.Authorize(mgr, decimal.NewFromInt(60), "goodwill")
		if !errors.Is(err, ErrOverrideNotAllowed) {
			t.Fatalf("expected ErrOverrideNotAllowed, got %v", err)
		}
	})

	t.Run("over the approval limit rejected", func(t *testing.T) {
		_, err := auth.Authorize(manager, decimal.NewFromInt(200), "rush job")
		if !errors.Is(err, ErrOverrideLimitExceeded) {
			t.Fatalf("expected ErrOverrideLimitExceeded, got %v", err)
		}
	})

	t.Run("exactly at the limit accepted", func(t *testing.T) {
		price, err := auth.Authorize(manager, decimal.NewFromInt(150), "fleet contract")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !price.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("got %s, want 150", price)
		}
	})

	t.Run("accepted price rounds to cents", func(t *testing.T) {
		price, err := auth.Authorize(manager, decimal.RequireFromString("99.999"), "quoted verbally")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !price.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("got %s, want 100.00", price)
		}
	})
}
