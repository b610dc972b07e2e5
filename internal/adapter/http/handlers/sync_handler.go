package handlers

import (
	"errors"
	"net/http"

	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/infrastructure/backend"
	"preventa/internal/usecase"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler triggers downloads and uploads against the remote backend.
type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// Download godoc
// @Summary      Refresh products, clients and goals
// @Description  Each resource is stored independently. 207 means some resources failed and kept their previous snapshot.
// @Tags         sync
// @Produce      json
// @Success      200 {object}  usecase.DownloadReport
// @Success      207 {object}  usecase.DownloadReport
// @Failure      502 {object}  usecase.DownloadReport
// @Router       /sync/download [post]
func (h *SyncHandler) Download(c *gin.Context) {
	report, err := h.usecase.Download(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, report)
	case errors.Is(err, usecase.ErrSyncInProgress):
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	case report.Succeeded() > 0:
		c.JSON(http.StatusMultiStatus, report)
	default:
		c.JSON(http.StatusBadGateway, report)
	}
}

// SyncAll godoc
// @Summary      Upload GPS clients then pending orders
// @Tags         sync
// @Produce      json
// @Success      200 {object}  usecase.SyncReport
// @Failure      409 {object}  pkg.HTTPError
// @Router       /sync/upload [post]
func (h *SyncHandler) SyncAll(c *gin.Context) {
	report, err := h.usecase.SyncAll(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		if errors.Is(err, usecase.ErrSyncInProgress) {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(appErr.HTTPStatus, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *SyncHandler) UploadGps(c *gin.Context) {
	sent, err := h.usecase.UploadCatalogGps(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UploadResponse{Sent: sent})
}

func (h *SyncHandler) UploadOrders(c *gin.Context) {
	sent, err := h.usecase.UploadPendingOrders(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.UploadResponse{Sent: sent})
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSyncInProgress):
		return pkg.NewDomainErrorSimple("SYNC_IN_PROGRESS", "A sync is already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrQueueIntegrity):
		return pkg.NewDomainError("QUEUE_INTEGRITY", "A pending order is incomplete; export the queue before retrying", err, http.StatusUnprocessableEntity)
	case errors.Is(err, backend.ErrBackendNotConfigured):
		return pkg.NewDomainErrorSimple("BACKEND_NOT_CONFIGURED", "The backend URL is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", "The backend could not be reached", err, http.StatusBadGateway)
	}
}
