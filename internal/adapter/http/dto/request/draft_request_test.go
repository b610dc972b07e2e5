package request

import (
	"testing"

	"preventa/internal/domain/entities"
)

func TestPriceTierRequest_ResolveTier(t *testing.T) {
	cases := map[string]entities.PriceTier{
		"general":         entities.PriceTierGeneral,
		" MAYORISTA ":     entities.PriceTierWholesale,
		"Lista Mayorista": entities.PriceTierWholesale,
		"Precio General":  entities.PriceTierGeneral,
		"vip":             entities.PriceTier("vip"),
	}
	for in, want := range cases {
		if got := (PriceTierRequest{Tier: in}).ResolveTier(); got != want {
			t.Fatalf("ResolveTier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAddLineRequest_ResolveProductID(t *testing.T) {
	if got := (AddLineRequest{ProductID: " p1 "}).ResolveProductID("sel"); got != "p1" {
		t.Fatalf("expected explicit id, got %q", got)
	}
	if got := (AddLineRequest{}).ResolveProductID("sel"); got != "sel" {
		t.Fatalf("expected selected id, got %q", got)
	}
}
