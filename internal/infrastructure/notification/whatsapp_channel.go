package notification

import (
	"context"
	"errors"

	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var ErrMissingPhone = errors.New("client has no phone number")

// WhatsAppChannel hands the wa.me deep link back to the device, which opens
// it. Delivery happens on the device, so Send only checks the link is usable
// and records it.
type WhatsAppChannel struct{}

var _ interfaces.INotificationChannel = (*WhatsAppChannel)(nil)

func NewWhatsAppChannel() *WhatsAppChannel {
	return &WhatsAppChannel{}
}

func (c *WhatsAppChannel) Send(_ context.Context, n interfaces.Notification) error {
	if n.Phone == "" {
		logger.Log.Warn("[notification][whatsapp] no phone; link not usable")
		return ErrMissingPhone
	}
	logger.Log.WithFields(logrus.Fields{
		"phone":      n.Phone,
		"text_bytes": len(n.Text),
	}).Info("[notification][whatsapp] link ready")
	return nil
}
