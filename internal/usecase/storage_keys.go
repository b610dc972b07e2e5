package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"preventa/internal/usecase/interfaces"
)

// Well-known storage keys. The names match the keys the device front-end has
// always used, so snapshots stay readable by both.
const (
	KeyDraft         = "pedido_borrador"
	KeyPendingOrders = "pedidos"
	KeyClients       = "clientes"
	KeyProducts      = "productos"
	KeyGoals         = "objetivos"
)

// loadJSON decodes the document under key into dst. It reports found=false
// when the key is absent.
func loadJSON(ctx context.Context, storage interfaces.IStorage, key string, dst any) (bool, error) {
	raw, found, err := storage.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(ctx context.Context, storage interfaces.IStorage, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := storage.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// loadRawRows reads a catalog snapshot as loosely typed rows. A document that
// is not a JSON array yields no rows rather than an error.
func loadRawRows(ctx context.Context, storage interfaces.IStorage, key string) ([]any, error) {
	raw, found, err := storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return nil, nil
	}
	var rows []any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, nil
	}
	return rows, nil
}
