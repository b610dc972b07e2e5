package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"preventa/internal/adapter/persistence/repository"
	"preventa/internal/domain/entities"
	"preventa/internal/usecase/interfaces"
	mock_interfaces "preventa/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type finalizeFixture struct {
	storage *repository.MemoryStorage
	catalog *CatalogUseCase
	draft   *DraftEngine
	queue   *PendingOrderQueue
}

func newFinalizeFixture(t *testing.T, clientID string) finalizeFixture {
	t.Helper()
	s := newSeededStorage(t)
	f := finalizeFixture{
		storage: s,
		catalog: newLoadedCatalog(t, s),
		draft:   newTestDraft(t, s),
		queue:   NewPendingOrderQueue(s),
	}
	if clientID != "" {
		c, err := f.catalog.FindClient(clientID)
		if err != nil {
			t.Fatalf("client %s: %v", clientID, err)
		}
		if _, err := f.draft.SelectClient(context.Background(), c); err != nil {
			t.Fatalf("select client: %v", err)
		}
	}
	return f
}

func (f finalizeFixture) finalizer(cfg FinalizerConfig) *OrderFinalizer {
	u := NewOrderFinalizer(f.draft, f.catalog, f.queue, cfg)
	u.now = func() time.Time { return time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC) }
	return u
}

func TestOrderFinalizer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newFinalizeFixture(t, "c1")
	yerba := mustProduct(t, f.catalog, "1")

	f.draft.AddLine(ctx, yerba, 3)
	f.draft.SetPriceTier(ctx, entities.PriceTierWholesale)
	f.draft.AddLine(ctx, yerba, 1)

	res, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Order.Total != 380 {
		t.Fatalf("expected total 380, got %v", res.Order.Total)
	}
	if res.Order.CreatedAt != "7/3/2026, 09:05:00" {
		t.Fatalf("unexpected created at: %q", res.Order.CreatedAt)
	}
	if res.Order.Observation == nil {
		t.Fatalf("observation must always be present")
	}
	if res.Location != LocationDeclined {
		t.Fatalf("expected declined location without a confirmer, got %s", res.Location)
	}

	pending, err := f.queue.List(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].Total != 380 || len(pending[0].Lines) != 2 {
		t.Fatalf("unexpected queue: %+v", pending)
	}
	if pending[0].Lines[0].PriceTier != entities.PriceTierGeneral || pending[0].Lines[1].PriceTier != entities.PriceTierWholesale {
		t.Fatalf("line tiers not preserved: %+v", pending[0].Lines)
	}
	if pending[0].Lines[0].ID == pending[0].Lines[1].ID {
		t.Fatalf("lines must stay distinct")
	}

	if _, ok := persistedDraft(t, f.storage); ok {
		t.Fatalf("draft must be cleared after finalize")
	}
	if st := f.draft.State().Status; st != DraftStatusEmpty {
		t.Fatalf("expected empty draft, got %s", st)
	}
}

func TestOrderFinalizer_AppendsAfterLegacyQueue(t *testing.T) {
	ctx := context.Background()
	f := newFinalizeFixture(t, "c1")
	if err := f.storage.Set(ctx, KeyPendingOrders, []byte(legacyQueueJSON)); err != nil {
		t.Fatalf("seed queue: %v", err)
	}
	f.draft.AddLine(ctx, mustProduct(t, f.catalog, "1"), 2)

	res, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := f.queue.List(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "1700000000000" || pending[1].ID != res.Order.ID {
		t.Fatalf("unexpected queue: %+v", pending)
	}
	if _, ok := persistedDraft(t, f.storage); ok {
		t.Fatalf("draft must be cleared after finalize")
	}
}

func TestOrderFinalizer_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		f := newFinalizeFixture(t, "c1")
		_, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
		if _, err := f.draft.BeginFinalize(); err != nil {
			t.Fatalf("draft must be released after a rejected finalize: %v", err)
		}
	})

	t.Run("client deselected", func(t *testing.T) {
		f := newFinalizeFixture(t, "c1")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "1"), 1)
		f.draft.SetClientSearch(ctx, "otro")
		_, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{})
		if !errors.Is(err, ErrClientNotSelected) {
			t.Fatalf("expected ErrClientNotSelected, got %v", err)
		}
		if len(f.draft.State().Draft.Lines) != 1 {
			t.Fatalf("cart must be untouched")
		}
	})

	t.Run("client no longer in catalog", func(t *testing.T) {
		f := newFinalizeFixture(t, "")
		f.draft.SelectClient(ctx, entities.Client{ID: "ghost", Name: "Ghost"})
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "1"), 1)
		_, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
		pending, _ := f.queue.List(ctx)
		if len(pending) != 0 {
			t.Fatalf("nothing must be queued")
		}
	})
}

func TestOrderFinalizer_LocationCapture(t *testing.T) {
	ctx := context.Background()
	fix := entities.Location{Lat: -32.9, Lon: -60.6}

	t.Run("captured and patched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFinalizeFixture(t, "c1")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)

		geo := mock_interfaces.NewMockIGeolocationProvider(ctrl)
		geo.EXPECT().CurrentLocation(gomock.Any()).Return(fix, nil)

		res, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{
			Confirmer:   interfaces.StaticConfirmer(true),
			Geolocation: geo,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Location != LocationCaptured || len(res.Warnings) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		c1, _ := f.catalog.FindClient("c1")
		if !c1.HasLocation() || c1.Location.Lat != fix.Lat {
			t.Fatalf("client not patched: %+v", c1)
		}
	})

	t.Run("client already located", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFinalizeFixture(t, "c2")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)
		confirmer := mock_interfaces.NewMockIConfirmer(ctrl)

		res, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{Confirmer: confirmer})
		if err != nil || res.Location != LocationNotNeeded {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("denied keeps the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFinalizeFixture(t, "c1")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)

		geo := mock_interfaces.NewMockIGeolocationProvider(ctrl)
		geo.EXPECT().CurrentLocation(gomock.Any()).Return(entities.Location{}, interfaces.ErrGeolocationDenied)

		res, err := f.finalizer(FinalizerConfig{Geolocation: geo}).Finalize(ctx, FinalizeOptions{
			Confirmer: interfaces.StaticConfirmer(true),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Location != LocationDenied || len(res.Warnings) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		pending, _ := f.queue.List(ctx)
		if len(pending) != 1 {
			t.Fatalf("order must stay queued")
		}
	})

	t.Run("no provider", func(t *testing.T) {
		f := newFinalizeFixture(t, "c1")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)
		res, err := f.finalizer(FinalizerConfig{}).Finalize(ctx, FinalizeOptions{
			Confirmer: interfaces.StaticConfirmer(true),
		})
		if err != nil || res.Location != LocationUnavailable {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

type blockingProvider struct{}

func (blockingProvider) CurrentLocation(context.Context) (entities.Location, error) {
	select {}
}

func TestCaptureLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("provider ignoring cancellation times out", func(t *testing.T) {
		_, outcome, err := CaptureLocation(ctx, blockingProvider{}, 20*time.Millisecond)
		if outcome != LocationTimeout || !errors.Is(err, interfaces.ErrGeolocationTimeout) {
			t.Fatalf("unexpected outcome %s %v", outcome, err)
		}
	})

	t.Run("unknown provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		geo := mock_interfaces.NewMockIGeolocationProvider(ctrl)
		geo.EXPECT().CurrentLocation(gomock.Any()).Return(entities.Location{}, errors.New("gps chip on fire"))
		_, outcome, err := CaptureLocation(ctx, geo, time.Second)
		if outcome != LocationFailed || err == nil {
			t.Fatalf("unexpected outcome %s %v", outcome, err)
		}
	})

	t.Run("provider reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		geo := mock_interfaces.NewMockIGeolocationProvider(ctrl)
		geo.EXPECT().CurrentLocation(gomock.Any()).Return(entities.Location{}, interfaces.ErrGeolocationUnavailable)
		if _, outcome, _ := CaptureLocation(ctx, geo, time.Second); outcome != LocationUnavailable {
			t.Fatalf("unexpected outcome %s", outcome)
		}
	})
}

func TestOrderFinalizer_RejectsReentrantFinalize(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFinalizeFixture(t, "c1")
	f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)
	u := f.finalizer(FinalizerConfig{})

	var nestedErr error
	confirmer := mock_interfaces.NewMockIConfirmer(ctrl)
	confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ interfaces.ConfirmationRequest) (bool, error) {
			_, nestedErr = u.Finalize(ctx, FinalizeOptions{})
			return false, nil
		})

	if _, err := u.Finalize(ctx, FinalizeOptions{Confirmer: confirmer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(nestedErr, ErrFinalizeInProgress) {
		t.Fatalf("expected ErrFinalizeInProgress for the nested call, got %v", nestedErr)
	}
	pending, _ := f.queue.List(ctx)
	if len(pending) != 1 {
		t.Fatalf("expected exactly one queued order, got %d", len(pending))
	}
}

func TestOrderFinalizer_SideEffects(t *testing.T) {
	ctx := context.Background()

	t.Run("notification failure is a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFinalizeFixture(t, "c2")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 2)

		notifier := mock_interfaces.NewMockINotificationChannel(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("offline"))

		res, err := f.finalizer(FinalizerConfig{Notifier: notifier}).Finalize(ctx, FinalizeOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "offline") {
			t.Fatalf("unexpected warnings: %v", res.Warnings)
		}
	})

	t.Run("payment link lands in the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFinalizeFixture(t, "c2")
		f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 2)

		payments := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)
		payments.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return("https://mp.example/pay/1", nil)
		notifier := mock_interfaces.NewMockINotificationChannel(ctrl)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n interfaces.Notification) error {
				if !strings.Contains(n.Text, "https://mp.example/pay/1") {
					t.Fatalf("payment link missing from message: %q", n.Text)
				}
				return nil
			})

		res, err := f.finalizer(FinalizerConfig{Notifier: notifier, Payments: payments}).Finalize(ctx, FinalizeOptions{})
		if err != nil || res.PaymentLink == "" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestOrderTotal_IgnoresNonNumericSubtotals(t *testing.T) {
	lines := []entities.CartLine{{Subtotal: 300}, {Subtotal: math.NaN()}, {Subtotal: math.Inf(1)}, {Subtotal: 80}}
	if got := OrderTotal(lines); got != 380 {
		t.Fatalf("expected 380, got %v", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"11 1234-5678", "5491112345678"},
		{"+54 9 11 5555 0000", "5491155550000"},
		{"(0351) 15-123", "035115123"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in, "549"); got != tc.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildNotification(t *testing.T) {
	obs := "dejar en deposito"
	order := entities.FinalizedOrder{
		ID:         "o1",
		CreatedAt:  "7/3/2026, 09:05:00",
		ClientName: "Almacen Don Pepe",
		Lines: []entities.CartLine{
			{Name: "Yerba 1kg", Quantity: 3, Subtotal: 300},
			{Name: "Yerba 1kg", Quantity: 1, Subtotal: 80},
		},
		Total:       380,
		Observation: &obs,
	}
	client := entities.Client{Phone: "11 1234-5678"}

	n := BuildNotification(order, client, entities.PriceTierWholesale, "549", "")
	for _, want := range []string{"Almacen Don Pepe", "Mayorista", "3 x Yerba 1kg ($ 300)", "$ 380", "dejar en deposito"} {
		if !strings.Contains(n.Text, want) {
			t.Fatalf("message missing %q:\n%s", want, n.Text)
		}
	}
	if n.Phone != "5491112345678" {
		t.Fatalf("unexpected phone %q", n.Phone)
	}
	if !strings.HasPrefix(n.Link, "https://wa.me/5491112345678?text=") {
		t.Fatalf("unexpected link %q", n.Link)
	}
	if strings.Contains(n.Link, "+") || !strings.Contains(n.Link, "%20") {
		t.Fatalf("text must be percent-encoded: %q", n.Link)
	}

	empty := ""
	order.Observation = &empty
	if n := BuildNotification(order, client, entities.PriceTierGeneral, "549", ""); strings.Contains(n.Text, "Nota") {
		t.Fatalf("empty observation must be omitted:\n%s", n.Text)
	}
}

func TestOrderFinalizer_ExportPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFinalizeFixture(t, "c2")
	f.draft.AddLine(ctx, mustProduct(t, f.catalog, "2"), 1)

	if _, err := f.finalizer(FinalizerConfig{}).ExportPending(ctx); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}

	exporter := mock_interfaces.NewMockIOrderExporter(ctrl)
	u := f.finalizer(FinalizerConfig{Exporter: exporter})
	if _, err := u.Finalize(ctx, FinalizeOptions{}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	exporter.EXPECT().Export(gomock.Len(1)).Return([]byte("xlsx"), nil)
	exporter.EXPECT().ContentType().Return("application/test")
	exporter.EXPECT().FileExtension().Return("xlsx")
	got, err := u.ExportPending(ctx)
	if err != nil || string(got.Data) != "xlsx" {
		t.Fatalf("unexpected export: %+v %v", got, err)
	}
	if got.FileName != "pedidos-20260307-0905.xlsx" || got.ContentType != "application/test" || got.Orders != 1 {
		t.Fatalf("unexpected document: %+v", got)
	}
}
