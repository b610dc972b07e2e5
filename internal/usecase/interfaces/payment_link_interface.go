package interfaces

import (
	"context"

	"preventa/internal/domain/entities"
)

// IPaymentLinkGateway creates a hosted checkout link for a finalized order
// (e.g. Mercado Pago). It is optional; a nil gateway means no link.

//go:generate mockgen -source=payment_link_interface.go -destination=mocks/mock_payment_link.go -package=mock_interfaces

type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, order entities.FinalizedOrder) (string, error)
}
