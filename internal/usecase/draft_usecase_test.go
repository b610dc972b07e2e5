package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"preventa/internal/adapter/persistence/repository"
	"preventa/internal/domain/entities"
	"preventa/internal/usecase/interfaces"
	mock_interfaces "preventa/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func persistedDraft(t *testing.T, s *repository.MemoryStorage) (entities.OrderDraft, bool) {
	t.Helper()
	raw, found, err := s.Get(context.Background(), KeyDraft)
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	if !found {
		return entities.OrderDraft{}, false
	}
	var d entities.OrderDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("decode draft: %v", err)
	}
	return d, true
}

func TestDraftEngine_AddLineValidation(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)
	yerba := mustProduct(t, cat, "1")

	if _, err := d.AddLine(ctx, yerba, 1); !errors.Is(err, ErrNoClientSelected) {
		t.Fatalf("expected ErrNoClientSelected, got %v", err)
	}

	c1, _ := cat.FindClient("c1")
	if _, err := d.SelectClient(ctx, c1); err != nil {
		t.Fatalf("select client: %v", err)
	}
	if _, err := d.AddLine(ctx, nil, 1); !errors.Is(err, ErrNoProductSelected) {
		t.Fatalf("expected ErrNoProductSelected, got %v", err)
	}
	for _, qty := range []int{0, -2} {
		if _, err := d.AddLine(ctx, yerba, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if n := len(d.State().Draft.Lines); n != 0 {
		t.Fatalf("rejected adds must not mutate the cart, got %d lines", n)
	}
}

func TestDraftEngine_TierSwitchKeepsExistingLines(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)
	yerba := mustProduct(t, cat, "1")

	c1, _ := cat.FindClient("c1")
	if _, err := d.SelectClient(ctx, c1); err != nil {
		t.Fatalf("select client: %v", err)
	}
	first, err := d.AddLine(ctx, yerba, 3)
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	if first.Subtotal != 300 || first.PriceTier != entities.PriceTierGeneral {
		t.Fatalf("unexpected first line: %+v", first)
	}

	if _, err := d.SetPriceTier(ctx, entities.PriceTierWholesale); err != nil {
		t.Fatalf("set tier: %v", err)
	}
	second, err := d.AddLine(ctx, yerba, 1)
	if err != nil {
		t.Fatalf("add line: %v", err)
	}
	if second.UnitPrice != 80 || second.PriceTier != entities.PriceTierWholesale {
		t.Fatalf("unexpected second line: %+v", second)
	}

	state := d.State()
	if state.Draft.Lines[0].UnitPrice != 100 || state.Draft.Lines[0].Subtotal != 300 {
		t.Fatalf("existing line was repriced: %+v", state.Draft.Lines[0])
	}
	if state.Total != 380 {
		t.Fatalf("expected total 380, got %v", state.Total)
	}
	if first.ID == second.ID {
		t.Fatalf("line ids must be unique")
	}

	if _, err := d.SetPriceTier(ctx, "vip"); !errors.Is(err, ErrInvalidPriceTier) {
		t.Fatalf("expected ErrInvalidPriceTier, got %v", err)
	}
}

func TestDraftEngine_SelectClientUsesDefaultTier(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)

	c2, _ := cat.FindClient("c2")
	state, err := d.SelectClient(ctx, c2)
	if err != nil {
		t.Fatalf("select client: %v", err)
	}
	if state.Draft.PriceTier != entities.PriceTierWholesale || state.Draft.ClientSearch != c2.Name {
		t.Fatalf("unexpected draft: %+v", state.Draft)
	}

	state, _ = d.SetClientSearch(ctx, "Alm")
	if state.Draft.ClientID != "" {
		t.Fatalf("typing in the search box must deselect the client")
	}
}

func TestDraftEngine_AutosaveAndRecovery(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)

	c1, _ := cat.FindClient("c1")
	d.SelectClient(ctx, c1)
	d.AddLine(ctx, mustProduct(t, cat, "1"), 2)
	d.SetObservation(ctx, "entregar a la tarde")

	saved, ok := persistedDraft(t, s)
	if !ok {
		t.Fatalf("draft was not autosaved")
	}
	if saved.ClientID != "c1" || len(saved.Lines) != 1 || saved.Observation != "entregar a la tarde" {
		t.Fatalf("unexpected persisted draft: %+v", saved)
	}

	recovered := newTestDraft(t, s)
	state := recovered.State()
	if state.Status != DraftStatusBuilding || state.Draft.Lines[0].Subtotal != 200 {
		t.Fatalf("unexpected recovered state: %+v", state)
	}
	if !recovered.HasUnsavedWork() {
		t.Fatalf("recovered cart should count as unsaved work")
	}
}

func TestDraftEngine_EmptyDraftHasNoPersistedForm(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)

	c1, _ := cat.FindClient("c1")
	d.SelectClient(ctx, c1)
	line, _ := d.AddLine(ctx, mustProduct(t, cat, "2"), 1)
	if _, ok := persistedDraft(t, s); !ok {
		t.Fatalf("expected persisted draft")
	}

	d.RemoveLine(ctx, line.ID)
	d.SetClientSearch(ctx, "")
	if _, ok := persistedDraft(t, s); ok {
		t.Fatalf("empty draft must delete the persisted key")
	}

	// Repeating operations on an empty draft keeps it absent.
	d.RemoveLine(ctx, "unknown")
	d.SetClientSearch(ctx, "")
	if _, ok := persistedDraft(t, s); ok {
		t.Fatalf("empty draft must stay absent")
	}
	if st := d.State().Status; st != DraftStatusEmpty {
		t.Fatalf("expected empty status, got %s", st)
	}
}

func TestDraftEngine_RecoverEmptyOrCorruptDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("empty persisted draft is removed", func(t *testing.T) {
		s := repository.NewMemoryStorage()
		s.Set(ctx, KeyDraft, []byte(`{"clienteId":"","carrito":[],"observacion":"x"}`))
		newTestDraft(t, s)
		if _, found, _ := s.Get(ctx, KeyDraft); found {
			t.Fatalf("expected empty draft to be deleted")
		}
	})

	t.Run("corrupt draft starts fresh", func(t *testing.T) {
		s := repository.NewMemoryStorage()
		s.Set(ctx, KeyDraft, []byte(`{not json`))
		d, err := NewDraftEngine(ctx, s)
		if err == nil {
			t.Fatalf("expected recovery error")
		}
		if d == nil || d.State().Status != DraftStatusEmpty {
			t.Fatalf("expected a usable empty engine")
		}
	})
}

func TestDraftEngine_RecoverLooseDraft(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStorage()
	// The front-end keeps its draft under the same key.
	s.Set(ctx, "pedido_borrador", []byte(`{"clienteId":7,"busquedaCliente":"don jo","tipoPrecio":"Mayorista","carrito":[`+
		`{"id":1700000000001,"productoId":1,"nombre":"Yerba 1kg","precio":100,"cantidad":2,"subtotal":200},`+
		`{"id":1700000000002,"productoId":2,"nombre":"Azúcar","precio":"abc","cantidad":1,"subtotal":"abc"},`+
		`{"productoId":"3","nombre":"Fideos","precio":1250.5,"cantidad":"2","subtotal":2501}],"observacion":null}`))

	d, err := NewDraftEngine(ctx, s)
	if err != nil {
		t.Fatalf("unexpected recovery error: %v", err)
	}
	state := d.State()
	if state.Draft.ClientID != "7" || state.Draft.PriceTier != entities.PriceTierWholesale {
		t.Fatalf("unexpected recovered draft: %+v", state.Draft)
	}
	lines := state.Draft.Lines
	if len(lines) != 3 {
		t.Fatalf("expected the whole cart back, got %+v", lines)
	}
	if lines[0].ID != "1700000000001" || lines[0].ProductID != "1" || lines[0].Subtotal != 200 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Subtotal != 0 || lines[1].UnitPrice != 0 {
		t.Fatalf("unreadable amounts should count as zero: %+v", lines[1])
	}
	if lines[2].ID == "" || lines[2].Quantity != 2 || lines[2].UnitPrice != 1250.5 {
		t.Fatalf("unexpected third line: %+v", lines[2])
	}

	if _, err := d.RemoveLine(ctx, lines[2].ID); err != nil {
		t.Fatalf("remove recovered line: %v", err)
	}
	if len(d.State().Draft.Lines) != 2 {
		t.Fatalf("recovered line ids must be usable")
	}
}

func TestDraftEngine_Cancel(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*repository.MemoryStorage, *DraftEngine) {
		s := newSeededStorage(t)
		cat := newLoadedCatalog(t, s)
		d := newTestDraft(t, s)
		c1, _ := cat.FindClient("c1")
		d.SelectClient(ctx, c1)
		d.AddLine(ctx, mustProduct(t, cat, "1"), 1)
		return s, d
	}

	t.Run("declined keeps the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s, d := setup(t)
		confirmer := mock_interfaces.NewMockIConfirmer(ctrl)
		confirmer.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ConfirmationRequest) (bool, error) {
				if req.Kind != interfaces.ConfirmCancelDraft {
					t.Fatalf("unexpected confirmation kind %s", req.Kind)
				}
				return false, nil
			})

		if err := d.CancelDraft(ctx, confirmer); !errors.Is(err, ErrCancelNotConfirmed) {
			t.Fatalf("expected ErrCancelNotConfirmed, got %v", err)
		}
		if _, ok := persistedDraft(t, s); !ok || len(d.State().Draft.Lines) != 1 {
			t.Fatalf("declined cancel must keep the draft")
		}
	})

	t.Run("no confirmer", func(t *testing.T) {
		_, d := setup(t)
		if err := d.CancelDraft(ctx, nil); !errors.Is(err, ErrCancelNotConfirmed) {
			t.Fatalf("expected ErrCancelNotConfirmed, got %v", err)
		}
	})

	t.Run("confirmed clears everything", func(t *testing.T) {
		s, d := setup(t)
		if err := d.CancelDraft(ctx, interfaces.StaticConfirmer(true)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state := d.State()
		if state.Status != DraftStatusCancelled || state.Draft.PriceTier != entities.PriceTierGeneral {
			t.Fatalf("unexpected state: %+v", state)
		}
		if _, ok := persistedDraft(t, s); ok {
			t.Fatalf("cancel must delete the persisted draft")
		}
	})

	t.Run("empty draft needs no confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newTestDraft(t, repository.NewMemoryStorage())
		confirmer := mock_interfaces.NewMockIConfirmer(ctrl)
		if err := d.CancelDraft(ctx, confirmer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCancelConfirmation(t *testing.T) {
	if _, required := CancelConfirmation(DraftState{Draft: entities.OrderDraft{}}); required {
		t.Fatalf("empty draft should not require confirmation")
	}
	req, required := CancelConfirmation(DraftState{Draft: entities.OrderDraft{Observation: "nota"}})
	if !required || req.Kind != interfaces.ConfirmCancelDraft {
		t.Fatalf("an observation alone is worth confirming: %+v", req)
	}
}

func TestDraftEngine_FrozenWhileFinalizing(t *testing.T) {
	ctx := context.Background()
	s := newSeededStorage(t)
	cat := newLoadedCatalog(t, s)
	d := newTestDraft(t, s)
	c1, _ := cat.FindClient("c1")
	d.SelectClient(ctx, c1)

	if _, err := d.BeginFinalize(); err != nil {
		t.Fatalf("begin finalize: %v", err)
	}
	if _, err := d.BeginFinalize(); !errors.Is(err, ErrFinalizeInProgress) {
		t.Fatalf("expected ErrFinalizeInProgress, got %v", err)
	}
	if _, err := d.AddLine(ctx, mustProduct(t, cat, "1"), 1); !errors.Is(err, ErrFinalizeInProgress) {
		t.Fatalf("expected ErrFinalizeInProgress, got %v", err)
	}
	if err := d.CancelDraft(ctx, interfaces.StaticConfirmer(true)); !errors.Is(err, ErrFinalizeInProgress) {
		t.Fatalf("expected ErrFinalizeInProgress, got %v", err)
	}
	if st := d.State().Status; st != DraftStatusFinalizing {
		t.Fatalf("expected finalizing status, got %s", st)
	}

	d.EndFinalize()
	if _, err := d.AddLine(ctx, mustProduct(t, cat, "1"), 1); err != nil {
		t.Fatalf("draft should accept changes again: %v", err)
	}
}

type failingStorage struct {
	*repository.MemoryStorage
}

func (failingStorage) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func TestDraftEngine_AutosaveFailureIsReported(t *testing.T) {
	ctx := context.Background()
	d := newTestDraft(t, repository.NewMemoryStorage())
	d.storage = failingStorage{repository.NewMemoryStorage()}

	_, err := d.SelectClient(ctx, entities.Client{ID: "c1", Name: "Uno"})
	if !errors.Is(err, ErrDraftNotPersisted) {
		t.Fatalf("expected ErrDraftNotPersisted, got %v", err)
	}
	if d.State().Draft.ClientID != "c1" {
		t.Fatalf("in-memory state should still reflect the change")
	}
}
