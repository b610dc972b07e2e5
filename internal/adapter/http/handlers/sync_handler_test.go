package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"preventa/internal/adapter/http/handlers/mocks"
	"preventa/internal/infrastructure/backend"
	"preventa/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSyncRouter(t *testing.T) (*gin.Engine, *mocks.MockISyncUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISyncUseCase(ctrl)
	h := NewSyncHandler(uc)

	r := gin.New()
	r.POST("/v1/sync/download", h.Download)
	r.POST("/v1/sync/upload", h.SyncAll)
	r.POST("/v1/sync/gps", h.UploadGps)
	r.POST("/v1/sync/orders", h.UploadOrders)
	return r, uc
}

func TestSyncHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stored := usecase.ResourceResult{Stored: true, Rows: 3}
	failed := usecase.ResourceResult{Error: "status 500"}

	for _, tc := range []struct {
		name   string
		report usecase.DownloadReport
		err    error
		want   int
	}{
		{"all stored", usecase.DownloadReport{Products: stored, Clients: stored, Goals: stored}, nil, http.StatusOK},
		{"partial", usecase.DownloadReport{Products: stored, Clients: failed, Goals: stored}, usecase.ErrDownloadFailed, http.StatusMultiStatus},
		{"nothing stored", usecase.DownloadReport{Products: failed, Clients: failed, Goals: failed}, usecase.ErrDownloadFailed, http.StatusBadGateway},
		{"busy", usecase.DownloadReport{}, usecase.ErrSyncInProgress, http.StatusConflict},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newSyncRouter(t)
			uc.EXPECT().Download(gomock.Any()).Return(tc.report, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/sync/download", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("partial body carries per-resource errors", func(t *testing.T) {
		r, uc := newSyncRouter(t)
		uc.EXPECT().Download(gomock.Any()).Return(usecase.DownloadReport{Products: stored, Clients: failed}, usecase.ErrDownloadFailed)

		w := doJSON(r, http.MethodPost, "/v1/sync/download", "")
		var body usecase.DownloadReport
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if body.Clients.Error != "status 500" || !body.Products.Stored {
			t.Fatalf("unexpected report %+v", body)
		}
	})
}

func TestSyncHandler_SyncAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, uc := newSyncRouter(t)
		uc.EXPECT().SyncAll(gomock.Any()).Return(usecase.SyncReport{
			Gps:    usecase.StepResult{Attempted: true, Sent: 1},
			Orders: usecase.StepResult{Attempted: true, Sent: 2},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/sync/upload", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.SyncReport
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Orders.Sent != 2 || body.Gps.Sent != 1 {
			t.Fatalf("unexpected report %+v", body)
		}
	})

	t.Run("order upload failed keeps the report", func(t *testing.T) {
		r, uc := newSyncRouter(t)
		uc.EXPECT().SyncAll(gomock.Any()).Return(usecase.SyncReport{
			Orders: usecase.StepResult{Attempted: true, Error: "status 503"},
		}, errors.New("status 503"))

		w := doJSON(r, http.MethodPost, "/v1/sync/upload", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body usecase.SyncReport
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Orders.Error != "status 503" {
			t.Fatalf("unexpected report %+v", body)
		}
	})

	t.Run("busy", func(t *testing.T) {
		r, uc := newSyncRouter(t)
		uc.EXPECT().SyncAll(gomock.Any()).Return(usecase.SyncReport{}, usecase.ErrSyncInProgress)

		w := doJSON(r, http.MethodPost, "/v1/sync/upload", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestSyncHandler_Uploads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gps", func(t *testing.T) {
		r, uc := newSyncRouter(t)
		uc.EXPECT().UploadCatalogGps(gomock.Any()).Return(2, nil)

		w := doJSON(r, http.MethodPost, "/v1/sync/gps", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"sent":2}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	for _, tc := range []struct {
		name string
		err  error
		want int
	}{
		{"integrity", fmt.Errorf("%w: order o-1", usecase.ErrQueueIntegrity), http.StatusUnprocessableEntity},
		{"no backend", backend.ErrBackendNotConfigured, http.StatusServiceUnavailable},
		{"upstream", fmt.Errorf("%w: 500", backend.ErrBackendStatus), http.StatusBadGateway},
	} {
		t.Run("orders "+tc.name, func(t *testing.T) {
			r, uc := newSyncRouter(t)
			uc.EXPECT().UploadPendingOrders(gomock.Any()).Return(0, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/sync/orders", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
