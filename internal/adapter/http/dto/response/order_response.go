package response

import (
	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
	"preventa/internal/usecase"
)

type OrderResponse struct {
	ID          string             `json:"id"`
	CreatedAt   string             `json:"created_at"`
	ClientName  string             `json:"client_name"`
	Lines       []CartLineResponse `json:"lines"`
	Total       float64            `json:"total"`
	TotalLabel  string             `json:"total_label"`
	Observation string             `json:"observation"`
}

func FromOrder(o entities.FinalizedOrder) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		CreatedAt:   o.CreatedAt,
		ClientName:  o.ClientName,
		Lines:       FromCartLines(o.Lines),
		Total:       o.Total,
		TotalLabel:  pricing.FormatCurrency(o.Total),
		Observation: o.ObservationText(),
	}
}

type NotificationResponse struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

type FinalizeResponse struct {
	Order        OrderResponse        `json:"order"`
	Location     string               `json:"location"`
	Notification NotificationResponse `json:"notification"`
	PaymentLink  string               `json:"payment_link,omitempty"`
	Warnings     []string             `json:"warnings"`
}

func FromFinalizeResult(r usecase.FinalizeResult) FinalizeResponse {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return FinalizeResponse{
		Order:    FromOrder(r.Order),
		Location: string(r.Location),
		Notification: NotificationResponse{
			Phone: r.Notification.Phone,
			Text:  r.Notification.Text,
			Link:  r.Notification.Link,
		},
		PaymentLink: r.PaymentLink,
		Warnings:    warnings,
	}
}

type PendingOrdersResponse struct {
	Count      int             `json:"count"`
	Total      float64         `json:"total"`
	TotalLabel string          `json:"total_label"`
	Orders     []OrderResponse `json:"orders"`
}

func FromPendingOrders(orders []entities.FinalizedOrder) PendingOrdersResponse {
	resp := PendingOrdersResponse{Orders: make([]OrderResponse, 0, len(orders))}
	var lines []entities.CartLine
	for _, o := range orders {
		resp.Orders = append(resp.Orders, FromOrder(o))
		lines = append(lines, entities.CartLine{Subtotal: o.Total})
	}
	resp.Count = len(orders)
	resp.Total = usecase.OrderTotal(lines)
	resp.TotalLabel = pricing.FormatCurrency(resp.Total)
	return resp
}
