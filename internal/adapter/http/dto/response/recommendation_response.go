package response

import "preventa/internal/domain/entities"

// RecommendationResponse lists suggested products. HasHistory is false when
// the selected client has no top-ten list to draw from.
type RecommendationResponse struct {
	HasHistory bool              `json:"has_history"`
	Products   []ProductResponse `json:"products"`
}

func FromRecommendations(hasHistory bool, ps []entities.Product) RecommendationResponse {
	return RecommendationResponse{HasHistory: hasHistory, Products: FromProducts(ps)}
}
