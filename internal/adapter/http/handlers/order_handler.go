package handlers

import (
	"errors"
	"io"
	"net/http"

	request "preventa/internal/adapter/http/dto/request"
	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/infrastructure/geolocation"
	"preventa/internal/usecase"
	"preventa/internal/usecase/interfaces"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFinalizePayload = pkg.NewDomainErrorSimple("INVALID_FINALIZE_INPUT", "Invalid finalize payload", http.StatusBadRequest)
)

// OrderHandler finalizes drafts and serves the pending-order queue.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Finalize godoc
// @Summary      Finalize the draft
// @Description  Queues the order, optionally captures the client location and builds the WhatsApp message.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body body      request.FinalizeRequest false "location answer"
// @Success      201  {object}  response.FinalizeResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/finalize [post]
func (h *OrderHandler) Finalize(c *gin.Context) {
	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidFinalizePayload.HTTPStatus, errInvalidFinalizePayload.ToHTTPError())
		return
	}

	opts := usecase.FinalizeOptions{
		Confirmer:   interfaces.StaticConfirmer(payload.CaptureLocation),
		Geolocation: geolocation.NewDeviceProvider(payload.Lat, payload.Lon),
	}
	if payload.LocationDenied {
		opts.Geolocation = geolocation.NewDeniedProvider()
	}

	result, err := h.usecase.Finalize(c.Request.Context(), opts)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinalizeResult(result))
}

// ListPending godoc
// @Summary      Orders waiting for upload
// @Tags         orders
// @Produce      json
// @Success      200 {object}  response.PendingOrdersResponse
// @Router       /orders/pending [get]
func (h *OrderHandler) ListPending(c *gin.Context) {
	orders, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingOrders(orders))
}

// ExportPending godoc
// @Summary      Download the pending queue as a spreadsheet
// @Tags         orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Failure      501 {object}  pkg.HTTPError
// @Router       /orders/pending/export [get]
func (h *OrderHandler) ExportPending(c *gin.Context) {
	doc, err := h.usecase.ExportPending(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "The cart is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrClientNotSelected):
		return pkg.NewDomainErrorSimple("NO_CLIENT_SELECTED", "Select a client first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFinalizeInProgress):
		return pkg.NewDomainErrorSimple("FINALIZE_IN_PROGRESS", "The order is being finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrExportUnavailable):
		return pkg.NewDomainErrorSimple("EXPORT_UNAVAILABLE", "Order export is not configured", http.StatusNotImplemented)
	default:
		return mapCatalogError(err)
	}
}
