package routes

import (
	"preventa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDraft = "/draft"
)

func addDraftRoutes(rg *gin.RouterGroup, draftHandler *handlers.DraftHandler) {
	draft := rg.Group(PathDraft)
	{
		draft.GET("", draftHandler.GetDraft)
		draft.DELETE("", draftHandler.CancelDraft)
		draft.PUT("/client", draftHandler.SelectClient)
		draft.PUT("/client-search", draftHandler.SetClientSearch)
		draft.PUT("/tier", draftHandler.SetPriceTier)
		draft.PUT("/product", draftHandler.SelectProduct)
		draft.PUT("/observation", draftHandler.SetObservation)
		draft.POST("/lines", draftHandler.AddLine)
		draft.DELETE("/lines/:line_id", draftHandler.RemoveLine)
	}
}
