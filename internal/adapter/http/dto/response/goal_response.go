package response

import (
	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
)

type GoalResponse struct {
	Date            string  `json:"date"`
	Target          float64 `json:"target"`
	Sold            float64 `json:"sold"`
	Remaining       float64 `json:"remaining"`
	Projection      float64 `json:"projection"`
	TargetLabel     string  `json:"target_label"`
	SoldLabel       string  `json:"sold_label"`
	RemainingLabel  string  `json:"remaining_label"`
	ProjectionLabel string  `json:"projection_label"`
}

func FromGoal(g entities.Goal) GoalResponse {
	return GoalResponse{
		Date:            g.Date,
		Target:          g.Target,
		Sold:            g.Sold,
		Remaining:       g.Remaining,
		Projection:      g.Projection,
		TargetLabel:     pricing.FormatCurrency(g.Target),
		SoldLabel:       pricing.FormatCurrency(g.Sold),
		RemainingLabel:  pricing.FormatCurrency(g.Remaining),
		ProjectionLabel: pricing.FormatCurrency(g.Projection),
	}
}
