package routes

import (
	"preventa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSync = "/sync"
)

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("/download", syncHandler.Download)
		// GPS clients first, then pending orders.
		sync.POST("/upload", syncHandler.SyncAll)
		sync.POST("/gps", syncHandler.UploadGps)
		sync.POST("/orders", syncHandler.UploadOrders)
	}
}
