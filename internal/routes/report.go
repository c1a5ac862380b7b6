package routes

import (
	"net/http"
	"time"

	"github.com/mlima3022/Financas/internal/contracts"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	summary, err := h.ReportService.GetDashboardSummary(ctx, h.scope(c), c.Query("month"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DashboardResponse{Summary: summary})
}

func (h *Handler) GetCategorySpend(c *gin.Context) {
	from, err := optionalDate(c.Query("from"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("from", "use o formato AAAA-MM-DD"))
		return
	}
	to, err := optionalDate(c.Query("to"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("to", "use o formato AAAA-MM-DD"))
		return
	}

	now := time.Now().UTC()
	if from == nil {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from = &start
	}
	if to == nil {
		to = &now
	}

	ctx := c.Request.Context()
	categories, err := h.ReportService.GetCategorySpend(ctx, h.scope(c), *from, *to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorySpendResponse{Categories: categories})
}

func (h *Handler) GetMonthlyTrend(c *gin.Context) {
	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := pkg.ParseInt(raw)
		if err != nil || parsed < 1 {
			h.respondError(c, appErrors.NewValidationError("months", "deve ser um inteiro positivo"))
			return
		}
		months = parsed
	}

	ctx := c.Request.Context()
	points, err := h.ReportService.GetMonthlyTrend(ctx, h.scope(c), months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MonthlyTrendResponse{Points: points})
}
