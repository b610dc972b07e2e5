package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"

	"preventa/internal/domain/entities"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	ErrSyncInProgress    = errors.New("sync already in progress")
	ErrQueueIntegrity    = errors.New("pending order failed integrity check")
	ErrUnexpectedPayload = errors.New("backend payload is not a json array")
	ErrDownloadFailed    = errors.New("download failed")
)

const defaultSyncOrderDelay = time.Second

// Resource names as reported in DownloadReport.
const (
	ResourceProducts = "products"
	ResourceClients  = "clients"
	ResourceGoals    = "goals"
)

// ResourceResult is the outcome of downloading one resource. A failed resource
// leaves its previous local snapshot untouched.
type ResourceResult struct {
	Resource string `json:"resource"`
	Stored   bool   `json:"stored"`
	Rows     int    `json:"rows"`
	Error    string `json:"error,omitempty"`
}

type DownloadReport struct {
	Products ResourceResult `json:"products"`
	Clients  ResourceResult `json:"clients"`
	Goals    ResourceResult `json:"goals"`
	// Catalog counts after the reload that follows the download.
	CatalogClients  int `json:"catalog_clients"`
	CatalogProducts int `json:"catalog_products"`
}

// Succeeded counts the resources that were stored.
func (r DownloadReport) Succeeded() int {
	n := 0
	for _, res := range []ResourceResult{r.Products, r.Clients, r.Goals} {
		if res.Stored {
			n++
		}
	}
	return n
}

// StepResult is the outcome of one upload step of SyncAll.
type StepResult struct {
	Attempted bool   `json:"attempted"`
	Sent      int    `json:"sent"`
	Error     string `json:"error,omitempty"`
}

type SyncReport struct {
	Gps    StepResult `json:"gps"`
	Orders StepResult `json:"orders"`
}

// ISyncUseCase reconciles local snapshots and queues with the remote backend.
// Only one operation runs at a time; overlapping calls get ErrSyncInProgress.
type ISyncUseCase interface {
	Download(ctx context.Context) (DownloadReport, error)
	UploadGpsClients(ctx context.Context, clients []entities.Client) (int, error)
	UploadCatalogGps(ctx context.Context) (int, error)
	UploadPendingOrders(ctx context.Context) (int, error)
	SyncAll(ctx context.Context) (SyncReport, error)
}

type SyncCoordinator struct {
	backend  interfaces.IRemoteBackend
	storage  interfaces.IStorage
	catalog  ICatalogUseCase
	queue    IPendingOrderQueue
	validate *validator.Validate
	delay    time.Duration
	sleep    func(ctx context.Context, d time.Duration) error

	mu sync.Mutex
}

var _ ISyncUseCase = (*SyncCoordinator)(nil)

func NewSyncCoordinator(backend interfaces.IRemoteBackend, storage interfaces.IStorage, catalog ICatalogUseCase, queue IPendingOrderQueue, orderDelay time.Duration) *SyncCoordinator {
	if orderDelay < 0 {
		orderDelay = defaultSyncOrderDelay
	}
	return &SyncCoordinator{
		backend:  backend,
		storage:  storage,
		catalog:  catalog,
		queue:    queue,
		validate: validator.New(),
		delay:    orderDelay,
		sleep:    sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *SyncCoordinator) acquire() error {
	if !u.mu.TryLock() {
		return ErrSyncInProgress
	}
	return nil
}

// Download fetches products, clients and goals in that order. Each resource is
// stored independently; a failure is reported without rolling back the others.
// The catalog is reloaded afterwards.
func (u *SyncCoordinator) Download(ctx context.Context) (DownloadReport, error) {
	if err := u.acquire(); err != nil {
		return DownloadReport{}, err
	}
	defer u.mu.Unlock()

	var errs []error
	fetch := func(resource, key string, fn func(context.Context) (json.RawMessage, error)) ResourceResult {
		res := ResourceResult{Resource: resource}
		rows, err := u.downloadResource(ctx, key, fn)
		if err != nil {
			res.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", resource, err))
			logger.Log.WithField("resource", resource).WithError(err).Warn("[sync][usecase] download failed")
			return res
		}
		res.Stored = true
		res.Rows = rows
		return res
	}

	report := DownloadReport{
		Products: fetch(ResourceProducts, KeyProducts, u.backend.FetchProducts),
		Clients:  fetch(ResourceClients, KeyClients, u.backend.FetchClients),
		Goals:    fetch(ResourceGoals, KeyGoals, u.backend.FetchGoals),
	}

	cat, err := u.catalog.Reload(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("catalog reload: %w", err))
	}
	report.CatalogClients = len(cat.Clients)
	report.CatalogProducts = len(cat.Products)

	logger.Log.WithFields(logrus.Fields{
		"products": report.Products.Rows,
		"clients":  report.Clients.Rows,
		"goals":    report.Goals.Rows,
		"failed":   len(errs),
	}).Info("[sync][usecase] download finished")

	if len(errs) > 0 {
		return report, fmt.Errorf("%w: %w", ErrDownloadFailed, errors.Join(errs...))
	}
	return report, nil
}

// downloadResource replaces the local snapshot wholesale. Only a JSON array is
// accepted; anything else leaves the snapshot as it was.
func (u *SyncCoordinator) downloadResource(ctx context.Context, key string, fn func(context.Context) (json.RawMessage, error)) (int, error) {
	raw, err := fn(ctx)
	if err != nil {
		return 0, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil || rows == nil {
		return 0, ErrUnexpectedPayload
	}
	if err := u.storage.Set(ctx, key, raw); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// UploadGpsClients sends every client that has a location as one batch. A
// client goes out as its stored row, unchanged apart from the fresh
// coordinates; clients without a stored row are rendered under the same
// column names. No client with a location means nothing is sent.
func (u *SyncCoordinator) UploadGpsClients(ctx context.Context, clients []entities.Client) (int, error) {
	if err := u.acquire(); err != nil {
		return 0, err
	}
	defer u.mu.Unlock()

	located := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if c.HasLocation() {
			located = append(located, c)
		}
	}
	if len(located) == 0 {
		return 0, nil
	}

	stored, err := loadRawRows(ctx, u.storage, KeyClients)
	if err != nil {
		return 0, err
	}
	byID := make(map[string]map[string]any, len(stored))
	for _, raw := range stored {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id := stringField(row, idFields...); id != "" {
			byID[id] = row
		}
	}

	batch := make([]map[string]any, 0, len(located))
	for _, c := range located {
		row, ok := byID[c.ID]
		if !ok {
			batch = append(batch, clientRow(c))
			continue
		}
		row = maps.Clone(row)
		row["lat"] = c.Location.Lat
		row["lon"] = c.Location.Lon
		batch = append(batch, row)
	}
	return u.uploadGpsRows(ctx, batch)
}

// UploadCatalogGps sends the stored client rows that carry coordinates,
// exactly as they were downloaded.
func (u *SyncCoordinator) UploadCatalogGps(ctx context.Context) (int, error) {
	if err := u.acquire(); err != nil {
		return 0, err
	}
	defer u.mu.Unlock()
	return u.uploadCatalogGps(ctx)
}

func (u *SyncCoordinator) uploadCatalogGps(ctx context.Context) (int, error) {
	stored, err := loadRawRows(ctx, u.storage, KeyClients)
	if err != nil {
		return 0, err
	}
	batch := make([]map[string]any, 0, len(stored))
	for _, raw := range stored {
		if row, ok := raw.(map[string]any); ok && rowLocation(row) != nil {
			batch = append(batch, row)
		}
	}
	return u.uploadGpsRows(ctx, batch)
}

// clientRow renders a client that has no stored row under the source column
// names.
func clientRow(c entities.Client) map[string]any {
	row := map[string]any{
		"ID":        c.ID,
		"nombre":    c.Name,
		"direccion": c.Address,
		"telefono":  c.Phone,
		"lista":     c.DefaultPriceTier.Label(),
		"top10":     strings.Join(c.TopHistoryIDs, ", "),
	}
	if c.Location != nil {
		row["lat"] = c.Location.Lat
		row["lon"] = c.Location.Lon
	}
	return row
}

func (u *SyncCoordinator) uploadGpsRows(ctx context.Context, rows []map[string]any) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	body, err := json.Marshal(rows)
	if err != nil {
		return 0, err
	}
	if err := u.backend.UploadClients(ctx, body); err != nil {
		logger.Log.WithError(err).Warn("[sync][usecase] gps upload failed")
		return 0, err
	}
	logger.Log.WithField("clients", len(rows)).Info("[sync][usecase] gps clients uploaded")
	return len(rows), nil
}

// UploadPendingOrders sends the whole pending queue as one batch and, once the
// call returns without error, removes exactly the orders that were sent.
func (u *SyncCoordinator) UploadPendingOrders(ctx context.Context) (int, error) {
	if err := u.acquire(); err != nil {
		return 0, err
	}
	defer u.mu.Unlock()
	return u.uploadPendingOrders(ctx)
}

// CheckQueueIntegrity rejects the batch if any order is missing a required
// field.
func (u *SyncCoordinator) CheckQueueIntegrity(orders []entities.FinalizedOrder) error {
	for i, o := range orders {
		if err := u.validate.Struct(o); err != nil {
			return fmt.Errorf("%w: order %d (%s): %v", ErrQueueIntegrity, i, o.ID, err)
		}
	}
	return nil
}

func (u *SyncCoordinator) uploadPendingOrders(ctx context.Context) (int, error) {
	orders, err := u.queue.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}
	if err := u.CheckQueueIntegrity(orders); err != nil {
		logger.Log.WithError(err).Error("[sync][usecase] order upload aborted")
		return 0, err
	}

	body, err := json.Marshal(orders)
	if err != nil {
		return 0, err
	}
	if err := u.backend.UploadOrders(ctx, body); err != nil {
		logger.Log.WithFields(logrus.Fields{"orders": len(orders)}).WithError(err).Warn("[sync][usecase] order upload failed")
		return 0, err
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	removed, err := u.queue.Remove(ctx, ids)
	if err != nil {
		logger.Log.WithError(err).Error("[sync][usecase] orders sent but queue not pruned")
		return len(orders), err
	}
	logger.Log.WithFields(logrus.Fields{
		"sent":    len(orders),
		"removed": removed,
	}).Info("[sync][usecase] orders uploaded")
	return len(orders), nil
}

// SyncAll uploads GPS clients, waits the configured delay when there are orders
// to send, then uploads the pending orders. A GPS failure does not stop the
// order upload. The returned error reflects the order step.
func (u *SyncCoordinator) SyncAll(ctx context.Context) (SyncReport, error) {
	if err := u.acquire(); err != nil {
		return SyncReport{}, err
	}
	defer u.mu.Unlock()

	var report SyncReport
	sent, err := u.uploadCatalogGps(ctx)
	report.Gps = StepResult{Attempted: sent > 0 || err != nil, Sent: sent}
	if err != nil {
		report.Gps.Error = err.Error()
	}

	orders, err := u.queue.List(ctx)
	if err != nil {
		report.Orders = StepResult{Attempted: true, Error: err.Error()}
		return report, err
	}
	if len(orders) == 0 {
		return report, nil
	}

	if err := u.sleep(ctx, u.delay); err != nil {
		report.Orders = StepResult{Attempted: false, Error: err.Error()}
		return report, err
	}

	sent, err = u.uploadPendingOrders(ctx)
	report.Orders = StepResult{Attempted: true, Sent: sent}
	if err != nil {
		report.Orders.Error = err.Error()
		return report, err
	}
	return report, nil
}
