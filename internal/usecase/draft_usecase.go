package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"preventa/internal/domain/entities"
	"preventa/internal/domain/pricing"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoClientSelected   = errors.New("no client selected")
	ErrNoProductSelected  = errors.New("no product selected")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPriceTier   = errors.New("invalid price tier")
	ErrFinalizeInProgress = errors.New("order finalization in progress")
	ErrCancelNotConfirmed = errors.New("draft cancellation not confirmed")
	ErrDraftNotPersisted  = errors.New("draft autosave failed")
)

// DraftStatus is the observable state of the draft machine.
type DraftStatus string

const (
	DraftStatusEmpty      DraftStatus = "empty"
	DraftStatusBuilding   DraftStatus = "building"
	DraftStatusFinalizing DraftStatus = "finalizing"
	DraftStatusCancelled  DraftStatus = "cancelled"
)

// DraftState is a read-only snapshot of the engine.
type DraftState struct {
	Status            DraftStatus         `json:"status"`
	Draft             entities.OrderDraft `json:"draft"`
	SelectedProductID string              `json:"selected_product_id"`
	ProductSearch     string              `json:"product_search"`
	Total             float64             `json:"total"`
	HasUnsavedWork    bool                `json:"has_unsaved_work"`
}

// IDraftUseCase is the order draft state machine.
type IDraftUseCase interface {
	State() DraftState
	HasUnsavedWork() bool
	SelectClient(ctx context.Context, client entities.Client) (DraftState, error)
	SetClientSearch(ctx context.Context, text string) (DraftState, error)
	SetPriceTier(ctx context.Context, tier entities.PriceTier) (DraftState, error)
	SelectProduct(product entities.Product) (DraftState, error)
	AddLine(ctx context.Context, product *entities.Product, quantity int) (entities.CartLine, error)
	RemoveLine(ctx context.Context, lineID string) (DraftState, error)
	SetObservation(ctx context.Context, text string) (DraftState, error)
	CancelDraft(ctx context.Context, confirmer interfaces.IConfirmer) error

	BeginFinalize() (entities.OrderDraft, error)
	CompleteFinalize(ctx context.Context) error
	EndFinalize()
}

// DraftEngine owns the single live draft. Every mutation autosaves the whole
// draft; an empty draft (no client, no lines) has no persisted
// representation.
type DraftEngine struct {
	storage interfaces.IStorage

	mu                sync.Mutex
	draft             entities.OrderDraft
	selectedProductID string
	productSearch     string
	finalizing        bool
	cancelled         bool
}

var _ IDraftUseCase = (*DraftEngine)(nil)

// NewDraftEngine builds the engine and recovers a persisted draft if there is
// one. Recovered lines are restored verbatim, stale prices included.
func NewDraftEngine(ctx context.Context, storage interfaces.IStorage) (*DraftEngine, error) {
	e := &DraftEngine{storage: storage, draft: emptyDraft()}
	return e, e.recover(ctx)
}

func emptyDraft() entities.OrderDraft {
	return entities.OrderDraft{PriceTier: entities.PriceTierGeneral, Lines: []entities.CartLine{}}
}

// recover decodes the persisted draft loosely: a line with an unreadable
// amount is kept with that amount at zero instead of losing the cart.
func (e *DraftEngine) recover(ctx context.Context) error {
	var raw any
	found, err := loadJSON(ctx, e.storage, KeyDraft, &raw)
	if err != nil {
		logger.Log.WithError(err).Warn("[draft][usecase] persisted draft unreadable; starting fresh")
		return err
	}
	if !found {
		return nil
	}
	if raw == nil {
		return e.storage.Delete(ctx, KeyDraft)
	}
	d, ok := draftFromRow(raw)
	if !ok {
		err := fmt.Errorf("decode %s: not an object", KeyDraft)
		logger.Log.WithError(err).Warn("[draft][usecase] persisted draft unreadable; starting fresh")
		return err
	}
	if d.IsEmpty() {
		return e.storage.Delete(ctx, KeyDraft)
	}
	for i := range d.Lines {
		if d.Lines[i].ID == "" {
			d.Lines[i].ID = uuid.NewString()
		}
	}
	e.draft = d
	logger.Log.WithFields(logrus.Fields{
		"client_id": d.ClientID,
		"lines":     len(d.Lines),
	}).Info("[draft][usecase] draft recovered")
	return nil
}

func (e *DraftEngine) State() DraftState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *DraftEngine) HasUnsavedWork() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.draft.Lines) > 0
}

func (e *DraftEngine) stateLocked() DraftState {
	d := copyDraft(e.draft)
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(pricing.Money(l.Subtotal))
	}

	status := DraftStatusBuilding
	switch {
	case e.finalizing:
		status = DraftStatusFinalizing
	case d.IsEmpty() && e.cancelled:
		status = DraftStatusCancelled
	case d.IsEmpty():
		status = DraftStatusEmpty
	}

	return DraftState{
		Status:            status,
		Draft:             d,
		SelectedProductID: e.selectedProductID,
		ProductSearch:     e.productSearch,
		Total:             total.InexactFloat64(),
		HasUnsavedWork:    len(d.Lines) > 0,
	}
}

func copyDraft(d entities.OrderDraft) entities.OrderDraft {
	lines := make([]entities.CartLine, len(d.Lines))
	copy(lines, d.Lines)
	d.Lines = lines
	return d
}

// mutate applies fn under the lock and autosaves. fn must validate before it
// changes anything.
func (e *DraftEngine) mutate(ctx context.Context, fn func(d *entities.OrderDraft) error) (DraftState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.finalizing {
		return e.stateLocked(), ErrFinalizeInProgress
	}
	if err := fn(&e.draft); err != nil {
		return e.stateLocked(), err
	}
	e.cancelled = false
	return e.stateLocked(), e.persistLocked(ctx)
}

func (e *DraftEngine) persistLocked(ctx context.Context) error {
	var err error
	if e.draft.IsEmpty() {
		err = e.storage.Delete(ctx, KeyDraft)
	} else {
		err = saveJSON(ctx, e.storage, KeyDraft, e.draft)
	}
	if err != nil {
		logger.Log.WithError(err).Error("[draft][usecase] autosave failed")
		return fmt.Errorf("%w: %v", ErrDraftNotPersisted, err)
	}
	return nil
}

// SelectClient sets the client and switches the active tier to the client's
// default tier.
func (e *DraftEngine) SelectClient(ctx context.Context, client entities.Client) (DraftState, error) {
	return e.mutate(ctx, func(d *entities.OrderDraft) error {
		if client.ID == "" {
			return ErrNoClientSelected
		}
		tier := client.DefaultPriceTier
		if !tier.Valid() {
			tier = entities.PriceTierGeneral
		}
		d.ClientID = client.ID
		d.ClientSearch = client.Name
		d.PriceTier = tier
		return nil
	})
}

// SetClientSearch updates the search text. Typing deselects the client.
func (e *DraftEngine) SetClientSearch(ctx context.Context, text string) (DraftState, error) {
	return e.mutate(ctx, func(d *entities.OrderDraft) error {
		d.ClientSearch = text
		d.ClientID = ""
		return nil
	})
}

// SetPriceTier only affects lines added afterwards.
func (e *DraftEngine) SetPriceTier(ctx context.Context, tier entities.PriceTier) (DraftState, error) {
	return e.mutate(ctx, func(d *entities.OrderDraft) error {
		if !tier.Valid() {
			return ErrInvalidPriceTier
		}
		d.PriceTier = tier
		return nil
	})
}

func (e *DraftEngine) SelectProduct(product entities.Product) (DraftState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.finalizing {
		return e.stateLocked(), ErrFinalizeInProgress
	}
	e.selectedProductID = product.ID
	e.productSearch = product.Name
	return e.stateLocked(), nil
}

// AddLine appends a line priced with the active tier. Name, price and tier are
// snapshotted on the line.
func (e *DraftEngine) AddLine(ctx context.Context, product *entities.Product, quantity int) (entities.CartLine, error) {
	var line entities.CartLine
	_, err := e.mutate(ctx, func(d *entities.OrderDraft) error {
		if d.ClientID == "" {
			return ErrNoClientSelected
		}
		if product == nil || product.ID == "" {
			return ErrNoProductSelected
		}
		if quantity < 1 {
			return ErrInvalidQuantity
		}

		unit := product.PriceFor(d.PriceTier)
		line = entities.CartLine{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: unit,
			PriceTier: d.PriceTier,
			Quantity:  quantity,
			Subtotal:  pricing.Money(unit).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64(),
		}
		d.Lines = append(d.Lines, line)
		e.selectedProductID = ""
		e.productSearch = ""
		return nil
	})
	if err != nil && !errors.Is(err, ErrDraftNotPersisted) {
		return entities.CartLine{}, err
	}
	return line, err
}

// RemoveLine is a no-op when the id is unknown.
func (e *DraftEngine) RemoveLine(ctx context.Context, lineID string) (DraftState, error) {
	return e.mutate(ctx, func(d *entities.OrderDraft) error {
		kept := make([]entities.CartLine, 0, len(d.Lines))
		for _, l := range d.Lines {
			if l.ID != lineID {
				kept = append(kept, l)
			}
		}
		d.Lines = kept
		return nil
	})
}

func (e *DraftEngine) SetObservation(ctx context.Context, text string) (DraftState, error) {
	return e.mutate(ctx, func(d *entities.OrderDraft) error {
		d.Observation = text
		return nil
	})
}

// CancelConfirmation decides whether discarding the draft needs explicit
// confirmation, and with what message.
func CancelConfirmation(state DraftState) (interfaces.ConfirmationRequest, bool) {
	d := state.Draft
	if d.IsEmpty() && d.Observation == "" {
		return interfaces.ConfirmationRequest{}, false
	}
	msg := fmt.Sprintf("Discard the current order (%d lines)? This cannot be undone.", len(d.Lines))
	if d.ClientSearch != "" {
		msg = fmt.Sprintf("Discard the current order for %s (%d lines)? This cannot be undone.", d.ClientSearch, len(d.Lines))
	}
	return interfaces.ConfirmationRequest{Kind: interfaces.ConfirmCancelDraft, Message: msg}, true
}

// CancelDraft clears client, tier, lines and observation and deletes the
// persisted draft, once the confirmer agrees. The lock is not held while
// waiting for the answer.
func (e *DraftEngine) CancelDraft(ctx context.Context, confirmer interfaces.IConfirmer) error {
	if req, required := CancelConfirmation(e.State()); required {
		if confirmer == nil {
			return ErrCancelNotConfirmed
		}
		ok, err := confirmer.Confirm(ctx, req)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelNotConfirmed
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.finalizing {
		return ErrFinalizeInProgress
	}
	e.resetLocked()
	e.cancelled = true
	logger.Log.Info("[draft][usecase] draft cancelled")
	return e.persistLocked(ctx)
}

func (e *DraftEngine) resetLocked() {
	e.draft = emptyDraft()
	e.selectedProductID = ""
	e.productSearch = ""
}

// BeginFinalize freezes the draft for the finalizer and returns a copy. The
// draft stays frozen, and a second BeginFinalize is rejected, until
// EndFinalize.
func (e *DraftEngine) BeginFinalize() (entities.OrderDraft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.finalizing {
		return entities.OrderDraft{}, ErrFinalizeInProgress
	}
	e.finalizing = true
	return copyDraft(e.draft), nil
}

// CompleteFinalize clears the draft once the order has been committed. The
// draft remains frozen until EndFinalize.
func (e *DraftEngine) CompleteFinalize(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
	e.cancelled = false
	return e.persistLocked(ctx)
}

func (e *DraftEngine) EndFinalize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finalizing = false
}
