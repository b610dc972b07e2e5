package routes

import (
	"preventa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGoals = "/goals"
)

func addGoalsRoutes(rg *gin.RouterGroup, goalsHandler *handlers.GoalsHandler) {
	goals := rg.Group(PathGoals)
	{
		goals.GET("", goalsHandler.History)
		goals.GET("/latest", goalsHandler.Latest)
	}
}
