package routes

import (
	"preventa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog         = "/catalog"
	PathRecommendations = "/recommendations"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, recommendationHandler *handlers.RecommendationHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/clients", catalogHandler.SearchClients)
		catalog.GET("/products", catalogHandler.SearchProducts)
		catalog.POST("/reload", catalogHandler.Reload)
	}

	recommendations := rg.Group(PathRecommendations)
	{
		recommendations.GET("/top-history", recommendationHandler.TopHistory)
		recommendations.GET("/cross-sell", recommendationHandler.CrossSell)
	}
}
