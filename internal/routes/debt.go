package routes

import (
	"net/http"
	"time"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/debt"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateDebt(c *gin.Context) {
	var body contracts.DebtCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &debt.CreateDebtRequest{
		Name:              body.Name,
		Creditor:          body.Creditor,
		DebtType:          debt.Type(body.DebtType),
		PrincipalAmount:   body.PrincipalAmount,
		InstallmentsTotal: body.InstallmentsTotal,
		MonthlyAmount:     body.MonthlyAmount,
		InterestRate:      body.InterestRate,
	}
	if body.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("start_date", "use o formato AAAA-MM-DD"))
			return
		}
		req.StartDate = &startDate
	}

	ctx := c.Request.Context()
	entity, err := h.DebtService.CreateDebt(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.DebtCreateResponse{
		Message: "Dívida criada com sucesso",
		Debt:    entity,
	})
}

func (h *Handler) ListDebts(c *gin.Context) {
	ctx := c.Request.Context()
	debts, err := h.DebtService.ListDebts(ctx, h.scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtListResponse{
		Debts: debts,
		Total: len(debts),
	})
}

func (h *Handler) GetDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.DebtService.GetDebtByID(ctx, h.scope(c), debtID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := contracts.DebtSingleResponse{Debt: entity}
	if due := entity.NextDueDate(); due != nil {
		formatted := due.Format("2006-01-02")
		response.NextDueDate = &formatted
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) PayDebt(c *gin.Context) {
	debtID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.DebtPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.DebtService.PayDebt(ctx, h.scope(c), debtID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtCreateResponse{
		Message: "Pagamento registrado com sucesso",
		Debt:    entity,
	})
}

func (h *Handler) PreviewDebtSchedule(c *gin.Context) {
	var body contracts.DebtPreviewRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	input := debt.PreviewInput{DebtType: debt.Type(body.DebtType)}
	if body.PrincipalAmount != nil {
		input.PrincipalAmount = *body.PrincipalAmount
	}
	if body.InstallmentsTotal != nil {
		input.InstallmentsTotal = *body.InstallmentsTotal
	}
	if body.MonthlyAmount != nil {
		input.MonthlyAmount = *body.MonthlyAmount
	}

	c.JSON(http.StatusOK, contracts.DebtPreviewResponse{Preview: debt.PreviewSchedule(input)})
}

func (h *Handler) GetDebtSummary(c *gin.Context) {
	ctx := c.Request.Context()
	summary, err := h.DebtService.Summarize(ctx, h.scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.DebtSummaryResponse{Summary: summary})
}
