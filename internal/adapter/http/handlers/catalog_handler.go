package handlers

import (
	"errors"
	"net/http"

	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/usecase"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the in-memory client and product catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SearchClients godoc
// @Summary      Search clients
// @Description  Case-insensitive substring match on name, address or id. An empty query returns every client.
// @Tags         catalog
// @Produce      json
// @Param        q   query     string  false  "search text"
// @Success      200 {array}   response.ClientResponse
// @Router       /catalog/clients [get]
func (h *CatalogHandler) SearchClients(c *gin.Context) {
	clients := h.usecase.SearchClients(c.Query("q"))
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// SearchProducts godoc
// @Summary      Search products
// @Description  Case-insensitive substring match on name or id.
// @Tags         catalog
// @Produce      json
// @Param        q   query     string  false  "search text"
// @Success      200 {array}   response.ProductResponse
// @Router       /catalog/products [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	products := h.usecase.SearchProducts(c.Query("q"))
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// Reload rebuilds the catalog from the persisted snapshots.
func (h *CatalogHandler) Reload(c *gin.Context) {
	cat, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": len(cat.Clients), "products": len(cat.Products)})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
