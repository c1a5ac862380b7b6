package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/budget"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UpsertBudget(c *gin.Context) {
	var body contracts.BudgetUpsertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	categoryID, err := pkg.ParseULID(body.CategoryID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	req := &budget.UpsertBudgetRequest{
		CategoryId: categoryID,
		Month:      body.Month,
		Amount:     body.Amount,
	}

	ctx := c.Request.Context()
	entity, err := h.BudgetService.UpsertBudget(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetUpsertResponse{
		Message: "Orçamento salvo com sucesso",
		Budget:  entity,
	})
}

func (h *Handler) ListBudgets(c *gin.Context) {
	ctx := c.Request.Context()
	budgets, err := h.BudgetService.ListBudgets(ctx, h.scope(c), c.Query("month"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	budgetID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.BudgetService.DeleteBudget(ctx, h.scope(c), budgetID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Orçamento removido com sucesso"})
}
