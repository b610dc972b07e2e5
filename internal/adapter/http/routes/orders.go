package routes

import (
	"preventa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/finalize", orderHandler.Finalize)
		orders.GET("/pending", orderHandler.ListPending)
		orders.GET("/pending/export", orderHandler.ExportPending)
	}
}
