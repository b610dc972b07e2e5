package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"preventa/internal/adapter/persistence/repository"
)

func TestPendingOrderQueue(t *testing.T) {
	ctx := context.Background()
	s := repository.NewMemoryStorage()
	q := NewPendingOrderQueue(s)

	orders := queueOrders(t, q, 3)
	got, err := q.List(ctx)
	if err != nil || len(got) != 3 {
		t.Fatalf("unexpected list: %+v %v", got, err)
	}
	for i := range orders {
		if got[i].ID != orders[i].ID {
			t.Fatalf("append order not preserved: %+v", got)
		}
	}

	removed, err := q.Remove(ctx, []string{orders[1].ID, "unknown"})
	if err != nil || removed != 1 {
		t.Fatalf("unexpected remove: %d %v", removed, err)
	}
	got, _ = q.List(ctx)
	if len(got) != 2 || got[0].ID != orders[0].ID || got[1].ID != orders[2].ID {
		t.Fatalf("unexpected queue after remove: %+v", got)
	}

	t.Run("unreadable queue is never overwritten", func(t *testing.T) {
		s := repository.NewMemoryStorage()
		s.Set(ctx, KeyPendingOrders, []byte(`{broken`))
		q := NewPendingOrderQueue(s)
		if err := q.Append(ctx, orders[0]); err == nil {
			t.Fatalf("expected decode error")
		}
		raw, _, _ := s.Get(ctx, KeyPendingOrders)
		if string(raw) != `{broken` {
			t.Fatalf("queue was overwritten: %s", raw)
		}
	})

	t.Run("records written by the device front-end", func(t *testing.T) {
		s := repository.NewMemoryStorage()
		s.Set(ctx, KeyPendingOrders, []byte(legacyQueueJSON))
		q := NewPendingOrderQueue(s)

		got, err := q.List(ctx)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected list: %+v %v", got, err)
		}
		legacy := got[0]
		if legacy.ID != "1700000000000" || legacy.Total != 300 {
			t.Fatalf("unexpected legacy order: %+v", legacy)
		}
		if len(legacy.Lines) != 2 || legacy.Lines[0].ProductID != "1" || legacy.Lines[0].Subtotal != 300 {
			t.Fatalf("unexpected legacy lines: %+v", legacy.Lines)
		}
		if legacy.Lines[1].Subtotal != 0 || legacy.Lines[1].ID != "1700000000002" {
			t.Fatalf("unexpected legacy lines: %+v", legacy.Lines)
		}

		if err := q.Append(ctx, orders[0]); err != nil {
			t.Fatalf("append after legacy record: %v", err)
		}
		var rows []json.RawMessage
		raw, _, _ := s.Get(ctx, KeyPendingOrders)
		if err := json.Unmarshal(raw, &rows); err != nil || len(rows) != 2 {
			t.Fatalf("unexpected stored queue: %s", raw)
		}
		if !strings.Contains(string(rows[0]), `"id":1700000000000`) {
			t.Fatalf("legacy record was rewritten: %s", rows[0])
		}

		removed, err := q.Remove(ctx, []string{"1700000000000"})
		if err != nil || removed != 1 {
			t.Fatalf("unexpected remove: %d %v", removed, err)
		}
		got, _ = q.List(ctx)
		if len(got) != 1 || got[0].ID != orders[0].ID {
			t.Fatalf("unexpected queue after remove: %+v", got)
		}
	})
}

// legacyQueueJSON is a queue as the device front-end writes it: numeric
// timestamp ids and an unparseable line subtotal.
const legacyQueueJSON = `[{"id":1700000000000,"fecha":"14/11/2023, 19:13:20","cliente":"Almacén Don José",` +
	`"items":[{"id":1700000000001,"productoId":1,"nombre":"Yerba 1kg","precio":100,"cantidad":3,"subtotal":300},` +
	`{"id":1700000000002,"productoId":2,"nombre":"Azúcar","precio":"abc","cantidad":1,"subtotal":"abc"}],` +
	`"total":300,"observacion":""}]`
