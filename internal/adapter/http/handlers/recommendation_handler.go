package handlers

import (
	"errors"
	"net/http"

	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/usecase"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	usecase usecase.IRecommendationUseCase
}

func NewRecommendationHandler(uc usecase.IRecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{usecase: uc}
}

// TopHistory godoc
// @Summary      Frequent purchases of the selected client
// @Description  has_history is false when the client has no top-ten list.
// @Tags         recommendations
// @Produce      json
// @Success      200 {object}  response.RecommendationResponse
// @Failure      422 {object}  pkg.HTTPError
// @Router       /recommendations/top-history [get]
func (h *RecommendationHandler) TopHistory(c *gin.Context) {
	products, err := h.usecase.TopHistory()
	if errors.Is(err, usecase.ErrNoPurchaseHistory) {
		c.JSON(http.StatusOK, response.FromRecommendations(false, nil))
		return
	}
	if err != nil {
		appErr := mapRecommendationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecommendations(true, products))
}

// CrossSell godoc
// @Summary      Products related to the cart
// @Tags         recommendations
// @Produce      json
// @Success      200 {object}  response.RecommendationResponse
// @Router       /recommendations/cross-sell [get]
func (h *RecommendationHandler) CrossSell(c *gin.Context) {
	products := h.usecase.CrossSell()
	c.JSON(http.StatusOK, response.FromRecommendations(len(products) > 0, products))
}

func mapRecommendationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoClientSelected):
		return pkg.NewDomainErrorSimple("NO_CLIENT_SELECTED", "Select a client first", http.StatusUnprocessableEntity)
	default:
		return mapCatalogError(err)
	}
}
