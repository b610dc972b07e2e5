package response

import (
	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
)

type ClientResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	Phone            string             `json:"phone"`
	Location         *entities.Location `json:"location,omitempty"`
	HasLocation      bool               `json:"has_location"`
	DefaultPriceTier string             `json:"default_price_tier"`
	TopHistoryIDs    []string           `json:"top_history_ids"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Address:          c.Address,
		Phone:            c.Phone,
		Location:         c.Location,
		HasLocation:      c.HasLocation(),
		DefaultPriceTier: string(c.DefaultPriceTier),
		TopHistoryIDs:    c.TopHistoryIDs,
	}
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}

type ProductResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	PriceGeneral        float64  `json:"price_general"`
	PriceWholesale      float64  `json:"price_wholesale"`
	PriceGeneralLabel   string   `json:"price_general_label"`
	PriceWholesaleLabel string   `json:"price_wholesale_label"`
	Stock               int      `json:"stock"`
	Category            string   `json:"category"`
	RelatedIDs          []string `json:"related_ids"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		PriceGeneral:        p.PriceGeneral,
		PriceWholesale:      p.PriceWholesale,
		PriceGeneralLabel:   pricing.FormatCurrency(p.PriceGeneral),
		PriceWholesaleLabel: pricing.FormatCurrency(p.PriceWholesale),
		Stock:               p.Stock,
		Category:            p.Category,
		RelatedIDs:          p.RelatedIDs,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
