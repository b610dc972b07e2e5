package interfaces

import "context"

// Notification is the outbound message produced when an order is finalized.
type Notification struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// INotificationChannel delivers a finalized-order notification. Failures are
// reported but never undo the order.

//go:generate mockgen -source=notification_interface.go -destination=mocks/mock_notification.go -package=mock_interfaces

type INotificationChannel interface {
	Send(ctx context.Context, n Notification) error
}
