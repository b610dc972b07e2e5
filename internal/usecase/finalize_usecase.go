package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrClientNotSelected = ErrNoClientSelected
	ErrExportUnavailable = errors.New("order export not configured")
)

const (
	defaultGeolocationTimeout = 10 * time.Second
	defaultPhonePrefix        = "549"
	createdAtLayout           = "2/1/2006, 15:04:05"
	whatsAppBaseURL           = "https://wa.me/"
)

// LocationOutcome reports what happened to the optional GPS capture that
// follows a finalize. None of them affect the committed order.
type LocationOutcome string

const (
	LocationNotNeeded   LocationOutcome = "not_needed"
	LocationCaptured    LocationOutcome = "captured"
	LocationDeclined    LocationOutcome = "declined"
	LocationUnavailable LocationOutcome = "unavailable"
	LocationDenied      LocationOutcome = "denied"
	LocationTimeout     LocationOutcome = "timeout"
	LocationFailed      LocationOutcome = "failed"
)

// FinalizeOptions carries the per-call collaborators. Geolocation overrides the
// finalizer's default provider, typically with the fix reported by the device.
type FinalizeOptions struct {
	Confirmer   interfaces.IConfirmer
	Geolocation interfaces.IGeolocationProvider
}

type FinalizeResult struct {
	Order        entities.FinalizedOrder `json:"order"`
	Location     LocationOutcome         `json:"location"`
	Notification interfaces.Notification `json:"notification"`
	PaymentLink  string                  `json:"payment_link,omitempty"`
	Warnings     []string                `json:"warnings,omitempty"`
}

// IOrderUseCase finalizes the live draft and exposes the pending queue.
type IOrderUseCase interface {
	Finalize(ctx context.Context, opts FinalizeOptions) (FinalizeResult, error)
	ListPending(ctx context.Context) ([]entities.FinalizedOrder, error)
	ExportPending(ctx context.Context) (ExportedDocument, error)
}

// ExportedDocument is a rendered pending-queue export ready to download.
type ExportedDocument struct {
	Data        []byte
	ContentType string
	FileName    string
	Orders      int
}

// FinalizerConfig groups the optional collaborators and settings of the
// finalizer. Nil collaborators disable their step.
type FinalizerConfig struct {
	Geolocation        interfaces.IGeolocationProvider
	Notifier           interfaces.INotificationChannel
	Payments           interfaces.IPaymentLinkGateway
	Exporter           interfaces.IOrderExporter
	GeolocationTimeout time.Duration
	PhonePrefix        string
}

type OrderFinalizer struct {
	draft   IDraftUseCase
	catalog ICatalogUseCase
	queue   IPendingOrderQueue
	cfg     FinalizerConfig
	now     func() time.Time
}

var _ IOrderUseCase = (*OrderFinalizer)(nil)

func NewOrderFinalizer(draft IDraftUseCase, catalog ICatalogUseCase, queue IPendingOrderQueue, cfg FinalizerConfig) *OrderFinalizer {
	if cfg.GeolocationTimeout <= 0 {
		cfg.GeolocationTimeout = defaultGeolocationTimeout
	}
	if cfg.PhonePrefix == "" {
		cfg.PhonePrefix = defaultPhonePrefix
	}
	return &OrderFinalizer{draft: draft, catalog: catalog, queue: queue, cfg: cfg, now: time.Now}
}

// OrderTotal sums line subtotals. Subtotals that do not parse count as zero.
func OrderTotal(lines []entities.CartLine) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(pricing.Money(l.Subtotal))
	}
	return total.InexactFloat64()
}

// Finalize turns the live draft into a queued order and clears the draft. Once
// the order is queued every later step (GPS, payment link, notification) is
// best effort and only adds warnings to the result.
func (u *OrderFinalizer) Finalize(ctx context.Context, opts FinalizeOptions) (FinalizeResult, error) {
	draft, err := u.draft.BeginFinalize()
	if err != nil {
		return FinalizeResult{}, err
	}
	defer u.draft.EndFinalize()

	if len(draft.Lines) == 0 {
		return FinalizeResult{}, ErrEmptyCart
	}
	if draft.ClientID == "" {
		return FinalizeResult{}, ErrClientNotSelected
	}
	client, err := u.catalog.FindClient(draft.ClientID)
	if err != nil {
		return FinalizeResult{}, err
	}

	lines := make([]entities.CartLine, len(draft.Lines))
	copy(lines, draft.Lines)
	observation := draft.Observation
	order := entities.FinalizedOrder{
		ID:          uuid.NewString(),
		CreatedAt:   u.now().Format(createdAtLayout),
		ClientName:  client.Name,
		Lines:       lines,
		Total:       OrderTotal(lines),
		Observation: &observation,
	}

	if err := u.queue.Append(ctx, order); err != nil {
		logger.Log.WithError(err).Error("[order][usecase] queue append failed")
		return FinalizeResult{}, err
	}

	result := FinalizeResult{Order: order, Location: LocationNotNeeded}
	if err := u.draft.CompleteFinalize(ctx); err != nil {
		result.Warnings = append(result.Warnings, "draft not cleared: "+err.Error())
	}

	logger.Log.WithFields(logrus.Fields{
		"order_id":  order.ID,
		"client_id": client.ID,
		"lines":     len(order.Lines),
		"total":     order.Total,
	}).Info("[order][usecase] order finalized")

	u.enrichLocation(ctx, client, opts, &result)

	if u.cfg.Payments != nil {
		link, err := u.cfg.Payments.CreatePaymentLink(ctx, order)
		if err != nil {
			logger.Log.WithError(err).Warn("[order][usecase] payment link failed")
			result.Warnings = append(result.Warnings, "payment link: "+err.Error())
		} else {
			result.PaymentLink = link
		}
	}

	result.Notification = BuildNotification(order, client, draft.PriceTier, u.cfg.PhonePrefix, result.PaymentLink)
	if u.cfg.Notifier != nil {
		if err := u.cfg.Notifier.Send(ctx, result.Notification); err != nil {
			logger.Log.WithError(err).Warn("[order][usecase] notification failed")
			result.Warnings = append(result.Warnings, "notification: "+err.Error())
		}
	}
	return result, nil
}

// LocationConfirmation decides whether the salesperson should be asked to
// capture a GPS fix for the client.
func LocationConfirmation(client entities.Client) (interfaces.ConfirmationRequest, bool) {
	if client.HasLocation() {
		return interfaces.ConfirmationRequest{}, false
	}
	return interfaces.ConfirmationRequest{
		Kind:    interfaces.ConfirmCaptureLocation,
		Message: fmt.Sprintf("Order saved. %s has no GPS location yet. Capture the current position?", client.Name),
	}, true
}

func (u *OrderFinalizer) enrichLocation(ctx context.Context, client entities.Client, opts FinalizeOptions, result *FinalizeResult) {
	req, needed := LocationConfirmation(client)
	if !needed {
		return
	}
	if opts.Confirmer == nil {
		result.Location = LocationDeclined
		return
	}
	ok, err := opts.Confirmer.Confirm(ctx, req)
	if err != nil || !ok {
		result.Location = LocationDeclined
		return
	}

	provider := opts.Geolocation
	if provider == nil {
		provider = u.cfg.Geolocation
	}
	loc, outcome, err := CaptureLocation(ctx, provider, u.cfg.GeolocationTimeout)
	result.Location = outcome
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"client_id": client.ID,
			"outcome":   outcome,
		}).WithError(err).Warn("[order][usecase] location capture failed")
		result.Warnings = append(result.Warnings, "location: "+err.Error())
		return
	}

	if _, err := u.catalog.PatchClientLocation(ctx, client.ID, loc); err != nil {
		logger.Log.WithError(err).Warn("[order][usecase] location patch failed")
		result.Warnings = append(result.Warnings, "location not saved: "+err.Error())
	}
}

// CaptureLocation asks the provider for a fix and gives up after timeout even
// if the provider ignores cancellation.
func CaptureLocation(ctx context.Context, provider interfaces.IGeolocationProvider, timeout time.Duration) (entities.Location, LocationOutcome, error) {
	if provider == nil {
		return entities.Location{}, LocationUnavailable, interfaces.ErrGeolocationUnavailable
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type fix struct {
		loc entities.Location
		err error
	}
	ch := make(chan fix, 1)
	go func() {
		loc, err := provider.CurrentLocation(cctx)
		ch <- fix{loc: loc, err: err}
	}()

	var f fix
	select {
	case f = <-ch:
	case <-cctx.Done():
		return entities.Location{}, LocationTimeout, interfaces.ErrGeolocationTimeout
	}

	switch {
	case f.err == nil:
		return f.loc, LocationCaptured, nil
	case errors.Is(f.err, interfaces.ErrGeolocationTimeout), errors.Is(f.err, context.DeadlineExceeded):
		return entities.Location{}, LocationTimeout, interfaces.ErrGeolocationTimeout
	case errors.Is(f.err, interfaces.ErrGeolocationDenied):
		return entities.Location{}, LocationDenied, f.err
	case errors.Is(f.err, interfaces.ErrGeolocationUnavailable):
		return entities.Location{}, LocationUnavailable, f.err
	default:
		return entities.Location{}, LocationFailed, f.err
	}
}

// NormalizePhone keeps digits only and prefixes local 10-digit numbers.
func NormalizePhone(raw, prefix string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 10 {
		return prefix + digits
	}
	return digits
}

// BuildNotification renders the order message and its wa.me deep link.
func BuildNotification(order entities.FinalizedOrder, client entities.Client, tier entities.PriceTier, phonePrefix, paymentLink string) interfaces.Notification {
	var b strings.Builder
	b.WriteString("*NUEVO PEDIDO*\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", order.ClientName)
	fmt.Fprintf(&b, "*Lista:* %s\n", tier.Label())
	fmt.Fprintf(&b, "*Fecha:* %s\n", order.CreatedAt)
	b.WriteString("--------------------------------\n")
	for _, l := range order.Lines {
		fmt.Fprintf(&b, "▪️ %d x %s (%s)\n", l.Quantity, l.Name, pricing.FormatCurrency(l.Subtotal))
	}
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "*TOTAL: %s*", pricing.FormatCurrency(order.Total))
	if obs := order.ObservationText(); obs != "" {
		fmt.Fprintf(&b, "\n\n📝 *Nota:* %s", obs)
	}
	if paymentLink != "" {
		fmt.Fprintf(&b, "\n\n💳 *Pago:* %s", paymentLink)
	}

	text := b.String()
	phone := NormalizePhone(client.Phone, phonePrefix)
	return interfaces.Notification{
		Phone: phone,
		Text:  text,
		Link:  whatsAppBaseURL + phone + "?text=" + encodeURIComponent(text),
	}
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (u *OrderFinalizer) ListPending(ctx context.Context) ([]entities.FinalizedOrder, error) {
	return u.queue.List(ctx)
}

func (u *OrderFinalizer) ExportPending(ctx context.Context) (ExportedDocument, error) {
	if u.cfg.Exporter == nil {
		return ExportedDocument{}, ErrExportUnavailable
	}
	orders, err := u.queue.List(ctx)
	if err != nil {
		return ExportedDocument{}, err
	}
	data, err := u.cfg.Exporter.Export(orders)
	if err != nil {
		return ExportedDocument{}, err
	}
	return ExportedDocument{
		Data:        data,
		ContentType: u.cfg.Exporter.ContentType(),
		FileName:    fmt.Sprintf("pedidos-%s.%s", u.now().Format("20060102-1504"), u.cfg.Exporter.FileExtension()),
		Orders:      len(orders),
	}, nil
}
