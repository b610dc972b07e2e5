package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"preventa/internal/infrastructure/logger"
	"preventa/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrBackendNotConfigured = errors.New("backend url not configured")
	ErrBackendStatus        = errors.New("backend returned an error status")
)

const (
	opProducts    = "productos"
	opClients     = "clientes"
	opGoals       = "objetivos"
	opSaveClients = "guardar_clientes"

	maxResponseBytes = 32 << 20
)

// AppsScriptClient talks to the spreadsheet web app. Reads are GET ?op=<name>;
// order uploads are a bare POST to the base URL and client uploads a POST to
// ?op=guardar_clientes. The web app answers uploads without a useful body, so
// an upload counts as delivered when the request completes with a non-error
// status.
type AppsScriptClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IRemoteBackend = (*AppsScriptClient)(nil)

func NewAppsScriptClient(baseURL string, timeout time.Duration) *AppsScriptClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AppsScriptClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *AppsScriptClient) FetchProducts(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, opProducts)
}

func (c *AppsScriptClient) FetchClients(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, opClients)
}

func (c *AppsScriptClient) FetchGoals(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, opGoals)
}

func (c *AppsScriptClient) UploadOrders(ctx context.Context, orders json.RawMessage) error {
	return c.post(ctx, "", orders)
}

func (c *AppsScriptClient) UploadClients(ctx context.Context, clients json.RawMessage) error {
	return c.post(ctx, opSaveClients, clients)
}

func (c *AppsScriptClient) endpoint(op string) (string, error) {
	if c.baseURL == "" {
		return "", ErrBackendNotConfigured
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid backend url: %w", err)
	}
	if op != "" {
		q := u.Query()
		q.Set("op", op)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *AppsScriptClient) get(ctx context.Context, op string) (json.RawMessage, error) {
	target, err := c.endpoint(op)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.WithField("op", op).WithError(err).Warn("[backend][client] fetch failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s returned %d", ErrBackendStatus, op, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: response is not valid json", op)
	}

	logger.Log.WithFields(logrus.Fields{
		"op":          op,
		"bytes":       len(body),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("[backend][client] fetch")
	return json.RawMessage(body), nil
}

func (c *AppsScriptClient) post(ctx context.Context, op string, payload json.RawMessage) error {
	target, err := c.endpoint(op)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.WithField("op", op).WithError(err).Warn("[backend][client] upload failed")
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: upload %q returned %d", ErrBackendStatus, op, resp.StatusCode)
	}
	logger.Log.WithFields(logrus.Fields{
		"op":          op,
		"bytes":       len(payload),
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("[backend][client] upload")
	return nil
}
