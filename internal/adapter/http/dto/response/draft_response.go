package response

import (
	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
	"preventa/internal/usecase"
)

type CartLineResponse struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unit_price"`
	PriceTier     string  `json:"price_tier"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
	SubtotalLabel string  `json:"subtotal_label"`
}

func FromCartLine(l entities.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:            l.ID,
		ProductID:     l.ProductID,
		Name:          l.Name,
		UnitPrice:     l.UnitPrice,
		PriceTier:     string(l.PriceTier),
		Quantity:      l.Quantity,
		Subtotal:      l.Subtotal,
		SubtotalLabel: pricing.FormatCurrency(l.Subtotal),
	}
}

func FromCartLines(ls []entities.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromCartLine(l))
	}
	return out
}

type DraftResponse struct {
	Status            string             `json:"status"`
	ClientID          string             `json:"client_id"`
	ClientSearch      string             `json:"client_search"`
	PriceTier         string             `json:"price_tier"`
	Lines             []CartLineResponse `json:"lines"`
	Observation       string             `json:"observation"`
	SelectedProductID string             `json:"selected_product_id"`
	ProductSearch     string             `json:"product_search"`
	Total             float64            `json:"total"`
	TotalLabel        string             `json:"total_label"`
	HasUnsavedWork    bool               `json:"has_unsaved_work"`
}

func FromDraftState(s usecase.DraftState) DraftResponse {
	return DraftResponse{
		Status:            string(s.Status),
		ClientID:          s.Draft.ClientID,
		ClientSearch:      s.Draft.ClientSearch,
		PriceTier:         string(s.Draft.PriceTier),
		Lines:             FromCartLines(s.Draft.Lines),
		Observation:       s.Draft.Observation,
		SelectedProductID: s.SelectedProductID,
		ProductSearch:     s.ProductSearch,
		Total:             s.Total,
		TotalLabel:        pricing.FormatCurrency(s.Total),
		HasUnsavedWork:    s.HasUnsavedWork,
	}
}
