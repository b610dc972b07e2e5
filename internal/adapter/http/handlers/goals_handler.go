package handlers

import (
	"errors"
	"net/http"

	response "preventa/internal/adapter/http/dto/response"
	"preventa/internal/usecase"
	"preventa/pkg"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	usecase usecase.IGoalsUseCase
}

func NewGoalsHandler(uc usecase.IGoalsUseCase) *GoalsHandler {
	return &GoalsHandler{usecase: uc}
}

// Latest godoc
// @Summary      Most recent goals report
// @Tags         goals
// @Produce      json
// @Success      200 {object}  response.GoalResponse
// @Failure      404 {object}  pkg.HTTPError
// @Router       /goals/latest [get]
func (h *GoalsHandler) Latest(c *gin.Context) {
	goal, err := h.usecase.Latest(c.Request.Context())
	if err != nil {
		appErr := mapGoalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGoal(goal))
}

func (h *GoalsHandler) History(c *gin.Context) {
	goals, err := h.usecase.History(c.Request.Context())
	if err != nil {
		appErr := mapGoalsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	out := make([]response.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, response.FromGoal(g))
	}
	c.JSON(http.StatusOK, out)
}

func mapGoalsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoGoals):
		return pkg.NewDomainErrorSimple("GOALS_NOT_FOUND", "No goals report downloaded yet", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
