package entities

import "strings"

// PriceTier is the pricing mode of an order (lista de precios).
//
// Values are the labels persisted in drafts and uploaded with each line, so
// they stay in the backend's vocabulary.
type PriceTier string

const (
	PriceTierGeneral   PriceTier = "general"
	PriceTierWholesale PriceTier = "mayorista"
)

// wholesaleMarkers are matched case-insensitively against free-text tier labels.
var wholesaleMarkers = []string{"mayor", "wholesale"}

// ParsePriceTier maps a free-text tier label to a PriceTier.
// Anything without a wholesale marker is general.
func ParsePriceTier(label string) PriceTier {
	l := strings.ToLower(strings.TrimSpace(label))
	for _, m := range wholesaleMarkers {
		if strings.Contains(l, m) {
			return PriceTierWholesale
		}
	}
	return PriceTierGeneral
}

func (t PriceTier) Valid() bool {
	return t == PriceTierGeneral || t == PriceTierWholesale
}

// Label is the human-readable name used in outbound messages.
func (t PriceTier) Label() string {
	if t == PriceTierWholesale {
		return "Mayorista"
	}
	return "General"
}
