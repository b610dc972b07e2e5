package payments

import (
	"context"
	"errors"
	"fmt"

	"preventa/internal/domain/entities"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	currencyARS     = "ARS"
	mockCheckoutURL = "https://www.mercadopago.com.ar/checkout/v1/redirect?pref_id=mock-"
)

// preferenceCreator is the part of the preference client the gateway uses.
type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway creates a Checkout Pro preference per finalized order and
// returns its init point, which is appended to the order message.
type MercadoPagoGateway struct {
	client   preferenceCreator
	mockMode bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		logger.Log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		logger.Log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Log.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	logger.Log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

// PreferenceRequest maps an order to a preference: one item per line, the
// order id as external reference.
func PreferenceRequest(order entities.FinalizedOrder) preference.Request {
	items := make([]preference.ItemRequest, 0, len(order.Lines))
	for _, l := range order.Lines {
		items = append(items, preference.ItemRequest{
			ID:         l.ProductID,
			Title:      l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			CurrencyID: currencyARS,
		})
	}
	return preference.Request{
		Items:             items,
		ExternalReference: order.ID,
	}
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, order entities.FinalizedOrder) (string, error) {
	if g != nil && g.mockMode {
		link := mockCheckoutURL + order.ID
		logger.Log.WithField("order_id", order.ID).Info("[payment][gateway] mock preference created")
		return link, nil
	}

	if g == nil || g.client == nil {
		logger.Log.Warn("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Lines),
	}).Info("[payment][gateway] create preference start")

	resp, err := g.client.Create(ctx, PreferenceRequest(order))
	if err != nil {
		logger.Log.WithError(err).Warn("[payment][gateway] sdk create failed")
		return "", err
	}
	if resp == nil || resp.InitPoint == "" {
		return "", fmt.Errorf("preference for order %s has no init point", order.ID)
	}

	logger.Log.WithFields(logrus.Fields{
		"order_id":      order.ID,
		"preference_id": resp.ID,
	}).Info("[payment][gateway] create preference success")
	return resp.InitPoint, nil
}
