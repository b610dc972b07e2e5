package handlers

import (
	"errors"
	"io"
	"net/http"

	request "preventa/internal/adapter/http/dto/request"
	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/domain/entities"
	"preventa/internal/usecase"
	"preventa/internal/usecase/interfaces"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// DraftHandler exposes the order draft state machine. Every mutation answers
// with the full draft state so the client can redraw from a single response.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
	catalog usecase.ICatalogUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase, catalog usecase.ICatalogUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc, catalog: catalog}
}

// GetDraft godoc
// @Summary      Current draft
// @Tags         draft
// @Produce      json
// @Success      200 {object}  response.DraftResponse
// @Router       /draft [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDraftState(h.usecase.State()))
}

// SelectClient godoc
// @Summary      Select the draft client
// @Description  Selecting a client resets the price tier to the client's list.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body body      request.SelectClientRequest true "client"
// @Success      200  {object}  response.DraftResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /draft/client [put]
func (h *DraftHandler) SelectClient(c *gin.Context) {
	var payload request.SelectClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	client, err := h.catalog.FindClient(payload.ClientID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	state, err := h.usecase.SelectClient(c.Request.Context(), client)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

func (h *DraftHandler) SetClientSearch(c *gin.Context) {
	var payload request.ClientSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.SetClientSearch(c.Request.Context(), payload.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

func (h *DraftHandler) SetPriceTier(c *gin.Context) {
	var payload request.PriceTierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.SetPriceTier(c.Request.Context(), payload.ResolveTier())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

func (h *DraftHandler) SelectProduct(c *gin.Context) {
	var payload request.SelectProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	product, err := h.catalog.FindProduct(payload.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	state, err := h.usecase.SelectProduct(product)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

// AddLine godoc
// @Summary      Add a cart line
// @Description  Adds the given product, or the selected one when product_id is omitted, priced at the active tier.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body body      request.AddLineRequest true "line"
// @Success      201  {object}  response.CartLineResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /draft/lines [post]
func (h *DraftHandler) AddLine(c *gin.Context) {
	var payload request.AddLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	var product *entities.Product
	if id := payload.ResolveProductID(h.usecase.State().SelectedProductID); id != "" {
		p, err := h.catalog.FindProduct(id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		product = &p
	}

	line, err := h.usecase.AddLine(c.Request.Context(), product, payload.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCartLine(line))
}

func (h *DraftHandler) RemoveLine(c *gin.Context) {
	state, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("line_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

func (h *DraftHandler) SetObservation(c *gin.Context) {
	var payload request.ObservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.SetObservation(c.Request.Context(), payload.Text)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(state))
}

// CancelDraft godoc
// @Summary      Discard the draft
// @Description  A draft with lines or a selected client is only discarded when confirm is true.
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body body      request.CancelDraftRequest false "confirmation"
// @Success      200  {object}  response.DraftResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /draft [delete]
func (h *DraftHandler) CancelDraft(c *gin.Context) {
	var payload request.CancelDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if err := h.usecase.CancelDraft(c.Request.Context(), interfaces.StaticConfirmer(payload.Confirm)); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDraftState(h.usecase.State()))
}

func (h *DraftHandler) writeError(c *gin.Context, err error) {
	appErr := mapDraftError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoClientSelected):
		return pkg.NewDomainErrorSimple("NO_CLIENT_SELECTED", "Select a client first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNoProductSelected):
		return pkg.NewDomainErrorSimple("NO_PRODUCT_SELECTED", "Select a product first", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPriceTier):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_TIER", "Unknown price list", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFinalizeInProgress):
		return pkg.NewDomainErrorSimple("FINALIZE_IN_PROGRESS", "The order is being finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrCancelNotConfirmed):
		return pkg.NewDomainErrorSimple("CANCEL_NOT_CONFIRMED", "Discarding the draft needs confirmation", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftNotPersisted):
		return pkg.NewDomainError("DRAFT_NOT_PERSISTED", "The draft could not be saved on this device", err, http.StatusInternalServerError)
	default:
		return mapCatalogError(err)
	}
}
