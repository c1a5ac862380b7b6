package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/goal"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateGoal(c *gin.Context) {
	var body contracts.GoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &goal.CreateGoalRequest{
		Name:         body.Name,
		TargetAmount: body.TargetAmount,
		TargetDate:   body.TargetDate,
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.CreateGoal(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.GoalCreateResponse{
		Message: "Meta criada com sucesso",
		Goal:    entity,
	})
}

func (h *Handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()
	goals, err := h.GoalService.ListGoals(ctx, h.scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

func (h *Handler) GetGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.GetGoalByID(ctx, h.scope(c), goalID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalSingleResponse{Goal: entity})
}

func (h *Handler) AddGoalContribution(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.GoalContributionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.GoalService.AddContribution(ctx, h.scope(c), goalID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoalCreateResponse{
		Message: "Contribuição registrada com sucesso",
		Goal:    entity,
	})
}

func (h *Handler) DeleteGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.GoalService.DeleteGoal(ctx, h.scope(c), goalID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta removida com sucesso"})
}
