package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"preventa/internal/domain/entities"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidIDPolicy    = errors.New("invalid catalog id policy")
	ErrClientRowNotStored = errors.New("client row not found in persisted store")
)

// IDPolicy decides what happens to catalog rows that arrive without an id.
//
//   - deterministic: derive a stable id from the row's name and category/address
//   - drop: skip the row
//   - random: generate a fresh uuid on every load (legacy behavior; ids do not
//     survive reloads and line snapshots may stop resolving)
type IDPolicy string

const (
	IDPolicyDeterministic IDPolicy = "deterministic"
	IDPolicyDrop          IDPolicy = "drop"
	IDPolicyRandom        IDPolicy = "random"
)

func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case IDPolicyDeterministic, IDPolicyDrop, IDPolicyRandom:
		return p, nil
	case "":
		return IDPolicyDeterministic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidIDPolicy, s)
	}
}

// Catalog is the normalized in-memory snapshot of clients and products.
type Catalog struct {
	Clients  []entities.Client  `json:"clients"`
	Products []entities.Product `json:"products"`
}

func (c Catalog) FindProduct(id string) (entities.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Product{}, false
}

func (c Catalog) FindClient(id string) (entities.Client, bool) {
	for _, cl := range c.Clients {
		if cl.ID == id {
			return cl, true
		}
	}
	return entities.Client{}, false
}

// ResolveProducts maps ids to products in order, dropping ids that no longer
// exist in the catalog.
func (c Catalog) ResolveProducts(ids []string) []entities.Product {
	out := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.FindProduct(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// LoadCatalog normalizes raw client and product rows. Rows that are empty, not
// objects, or (under the drop policy) lack an id are skipped; it never fails.
func LoadCatalog(rawClients, rawProducts []any, policy IDPolicy) Catalog {
	cat := Catalog{
		Clients:  make([]entities.Client, 0, len(rawClients)),
		Products: make([]entities.Product, 0, len(rawProducts)),
	}
	for _, raw := range rawProducts {
		if p, ok := productFromRow(raw, policy); ok {
			cat.Products = append(cat.Products, p)
		}
	}
	for _, raw := range rawClients {
		if c, ok := clientFromRow(raw, policy); ok {
			cat.Clients = append(cat.Clients, c)
		}
	}
	return cat
}

// ICatalogUseCase owns the session catalog snapshot.
type ICatalogUseCase interface {
	Reload(ctx context.Context) (Catalog, error)
	Snapshot() Catalog
	FindClient(id string) (entities.Client, error)
	FindProduct(id string) (entities.Product, error)
	SearchClients(query string) []entities.Client
	SearchProducts(query string) []entities.Product
	PatchClientLocation(ctx context.Context, clientID string, loc entities.Location) (entities.Client, error)
}

type CatalogUseCase struct {
	storage interfaces.IStorage
	policy  IDPolicy

	mu      sync.RWMutex
	catalog Catalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(storage interfaces.IStorage, policy IDPolicy) *CatalogUseCase {
	if policy == "" {
		policy = IDPolicyDeterministic
	}
	return &CatalogUseCase{storage: storage, policy: policy}
}

// Reload replaces the snapshot with what is currently persisted. On a read
// failure the previous snapshot is kept.
func (u *CatalogUseCase) Reload(ctx context.Context) (Catalog, error) {
	rawClients, err := loadRawRows(ctx, u.storage, KeyClients)
	if err != nil {
		return u.Snapshot(), err
	}
	rawProducts, err := loadRawRows(ctx, u.storage, KeyProducts)
	if err != nil {
		return u.Snapshot(), err
	}

	cat := LoadCatalog(rawClients, rawProducts, u.policy)
	logger.Log.WithFields(logrus.Fields{
		"clients":      len(cat.Clients),
		"products":     len(cat.Products),
		"raw_clients":  len(rawClients),
		"raw_products": len(rawProducts),
		"id_policy":    u.policy,
	}).Info("[catalog][usecase] reload")

	u.mu.Lock()
	u.catalog = cat
	u.mu.Unlock()
	return cat, nil
}

func (u *CatalogUseCase) Snapshot() Catalog {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.catalog
}

func (u *CatalogUseCase) FindClient(id string) (entities.Client, error) {
	c, ok := u.Snapshot().FindClient(strings.TrimSpace(id))
	if !ok {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) FindProduct(id string) (entities.Product, error) {
	p, ok := u.Snapshot().FindProduct(strings.TrimSpace(id))
	if !ok {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// SearchClients matches names case-insensitively by substring. An empty
// query returns every client.
func (u *CatalogUseCase) SearchClients(query string) []entities.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []entities.Client{}
	for _, c := range u.Snapshot().Clients {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

func (u *CatalogUseCase) SearchProducts(query string) []entities.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []entities.Product{}
	for _, p := range u.Snapshot().Products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// PatchClientLocation attaches a GPS fix to exactly one client, both in the
// snapshot and in the persisted raw client rows. Other rows are written back
// untouched.
func (u *CatalogUseCase) PatchClientLocation(ctx context.Context, clientID string, loc entities.Location) (entities.Client, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i, c := range u.catalog.Clients {
		if c.ID == clientID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Client{}, ErrClientNotFound
	}

	rows, err := loadRawRows(ctx, u.storage, KeyClients)
	if err != nil {
		return entities.Client{}, err
	}
	patched := false
	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok || len(row) == 0 {
			continue
		}
		if id, ok := clientIDFromRow(row, u.policy); ok && id == clientID {
			row["lat"] = loc.Lat
			row["lon"] = loc.Lon
			patched = true
			break
		}
	}

	clients := make([]entities.Client, len(u.catalog.Clients))
	copy(clients, u.catalog.Clients)
	updated := clients[idx]
	updated.Location = &entities.Location{Lat: loc.Lat, Lon: loc.Lon}
	clients[idx] = updated
	u.catalog.Clients = clients

	if !patched {
		logger.Log.WithField("client_id", clientID).Warn("[catalog][usecase] location patched in memory only")
		return updated, ErrClientRowNotStored
	}
	if err := saveJSON(ctx, u.storage, KeyClients, rows); err != nil {
		return updated, err
	}
	logger.Log.WithField("client_id", clientID).Info("[catalog][usecase] location patched")
	return updated, nil
}
