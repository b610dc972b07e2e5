package request

import (
	"strings"

	"preventa/internal/domain/entities"
)

type SelectClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type ClientSearchRequest struct {
	Text string `json:"text"`
}

// PriceTierRequest accepts the tier value ("general", "mayorista") or a
// free-text label such as "Lista Mayorista".
type PriceTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

func (r PriceTierRequest) ResolveTier() entities.PriceTier {
	t := entities.PriceTier(strings.ToLower(strings.TrimSpace(r.Tier)))
	if t.Valid() {
		return t
	}
	if strings.Contains(strings.ToLower(r.Tier), "general") {
		return entities.PriceTierGeneral
	}
	if p := entities.ParsePriceTier(r.Tier); p == entities.PriceTierWholesale {
		return p
	}
	return t
}

type SelectProductRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// AddLineRequest adds a line for ProductID, or for the currently selected
// product when ProductID is empty.
type AddLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddLineRequest) ResolveProductID(selected string) string {
	if v := strings.TrimSpace(r.ProductID); v != "" {
		return v
	}
	return selected
}

type ObservationRequest struct {
	Text string `json:"text"`
}

type CancelDraftRequest struct {
	Confirm bool `json:"confirm"`
}
