package request

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"glassfleet/internal/domain/entities"
)

func TestCreateRepairRequest_ResolveOrigin(t *testing.T) {
	cases := []struct {
		in      string
		want    entities.RepairOrigin
		wantErr bool
	}{
		{in: "", want: entities.OriginField},
		{in: "field", want: entities.OriginField},
		{in: " FIELD ", want: entities.OriginField},
		{in: "customer", want: entities.OriginCustomer},
		{in: "Customer", want: entities.OriginCustomer},
		{in: "phone", wantErr: true},
	}

	for _, tc := range cases {
		got, err := CreateRepairRequest{Origin: tc.in}.ResolveOrigin()
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidOrigin) {
				t.Errorf("origin %q: expected ErrInvalidOrigin, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("origin %q: got %s (%v), want %s", tc.in, got, err, tc.want)
		}
	}
}

func TestBreakRequest_OverridePriceBinding(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var br BreakRequest
		if err := json.Unmarshal([]byte(`{"damage_type":"star","override_price":99.9}`), &br); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if br.OverridePrice == nil || !br.OverridePrice.Equal(decimal.RequireFromString("99.9")) {
			t.Fatalf("unexpected price: %v", br.OverridePrice)
		}
	})

	t.Run("string", func(t *testing.T) {
		var br BreakRequest
		if err := json.Unmarshal([]byte(`{"damage_type":"star","override_price":"99.90"}`), &br); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if br.OverridePrice == nil || !br.OverridePrice.Equal(decimal.RequireFromString("99.9")) {
			t.Fatalf("unexpected price: %v", br.OverridePrice)
		}
	})

	t.Run("absent", func(t *testing.T) {
		var br BreakRequest
		if err := json.Unmarshal([]byte(`{"damage_type":"star"}`), &br); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if br.OverridePrice != nil {
			t.Fatalf("expected nil price, got %v", br.OverridePrice)
		}
	})
}
