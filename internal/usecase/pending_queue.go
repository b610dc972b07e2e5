package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"preventa/internal/domain/entities"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// IPendingOrderQueue is the append-only list of finalized orders waiting for
// upload.
type IPendingOrderQueue interface {
	List(ctx context.Context) ([]entities.FinalizedOrder, error)
	Append(ctx context.Context, order entities.FinalizedOrder) error
	Remove(ctx context.Context, ids []string) (int, error)
}

type PendingOrderQueue struct {
	storage interfaces.IStorage
	mu      sync.Mutex
}

var _ IPendingOrderQueue = (*PendingOrderQueue)(nil)

func NewPendingOrderQueue(storage interfaces.IStorage) *PendingOrderQueue {
	return &PendingOrderQueue{storage: storage}
}

func (q *PendingOrderQueue) List(ctx context.Context) ([]entities.FinalizedOrder, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	rows, err := q.rowsLocked(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.FinalizedOrder, 0, len(rows))
	for i, raw := range rows {
		var row any
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", KeyPendingOrders, i, err)
		}
		o, ok := orderFromRow(row)
		if !ok {
			logger.Log.WithField("index", i).Warn("[queue][usecase] skipping non-object queue record")
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// rowsLocked returns the stored records untouched, so rewriting the queue
// never alters records written by other clients. It refuses to return a
// partial queue when the document is not a JSON array, so callers never
// overwrite orders they could not read.
func (q *PendingOrderQueue) rowsLocked(ctx context.Context) ([]json.RawMessage, error) {
	var rows []json.RawMessage
	if _, err := loadJSON(ctx, q.storage, KeyPendingOrders, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []json.RawMessage{}
	}
	return rows, nil
}

func (q *PendingOrderQueue) Append(ctx context.Context, order entities.FinalizedOrder) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	rows, err := q.rowsLocked(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}
	rows = append(rows, raw)
	if err := saveJSON(ctx, q.storage, KeyPendingOrders, rows); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"pending":  len(rows),
	}).Info("[queue][usecase] order queued")
	return nil
}

// Remove drops the orders with the given ids and returns how many were
// removed. Orders queued after the ids were read are kept. An emptied queue
// deletes the key.
func (q *PendingOrderQueue) Remove(ctx context.Context, ids []string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	rows, err := q.rowsLocked(ctx)
	if err != nil {
		return 0, err
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := make([]json.RawMessage, 0, len(rows))
	for _, raw := range rows {
		if _, ok := drop[orderIDFromRaw(raw)]; !ok {
			kept = append(kept, raw)
		}
	}
	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if len(kept) == 0 {
		err = q.storage.Delete(ctx, KeyPendingOrders)
	} else {
		err = saveJSON(ctx, q.storage, KeyPendingOrders, kept)
	}
	if err != nil {
		return 0, err
	}
	logger.Log.WithFields(logrus.Fields{
		"removed": removed,
		"pending": len(kept),
	}).Info("[queue][usecase] orders removed")
	return removed, nil
}
