package entities

// Product is a catalog item as normalized from the remote spreadsheet.
//
// IDs are externally assigned. Rows without an ID get a fallback ID according
// to the catalog ID policy; fallback IDs are not guaranteed stable across
// reloads unless the deterministic policy is used.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"nombre"`
	PriceGeneral   float64  `json:"precio"`
	PriceWholesale float64  `json:"precio_mayorista"`
	Stock          int      `json:"stock"`
	Category       string   `json:"categoria"`
	RelatedIDs     []string `json:"sugerencias"`
}

// PriceFor resolves the unit price for the given tier.
func (p Product) PriceFor(tier PriceTier) float64 {
	if tier == PriceTierWholesale {
		return p.PriceWholesale
	}
	return p.PriceGeneral
}
