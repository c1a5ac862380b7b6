package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/card"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCard(c *gin.Context) {
	var body contracts.CardCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &card.CreateCardRequest{
		Name:        body.Name,
		LimitAmount: body.LimitAmount,
		ClosingDay:  body.ClosingDay,
		DueDay:      body.DueDay,
	}

	ctx := c.Request.Context()
	entity, err := h.CardService.CreateCard(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CardCreateResponse{
		Message: "Cartão criado com sucesso",
		Card:    entity,
	})
}

func (h *Handler) ListCards(c *gin.Context) {
	ctx := c.Request.Context()
	cards, err := h.CardService.ListCards(ctx, h.scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardListResponse{
		Cards: cards,
		Total: len(cards),
	})
}

func (h *Handler) GetCard(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CardService.GetCardByID(ctx, h.scope(c), cardID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardSingleResponse{Card: entity})
}

func (h *Handler) UpdateCard(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.CardUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &card.UpdateCardRequest{
		Name:        body.Name,
		LimitAmount: body.LimitAmount,
		ClosingDay:  body.ClosingDay,
		DueDay:      body.DueDay,
	}

	ctx := c.Request.Context()
	entity, err := h.CardService.UpdateCard(ctx, h.scope(c), cardID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardCreateResponse{
		Message: "Cartão atualizado com sucesso",
		Card:    entity,
	})
}

func (h *Handler) DeleteCard(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CardService.DeleteCard(ctx, h.scope(c), cardID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cartão removido com sucesso"})
}

func (h *Handler) RecordCardPurchase(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.CardPurchaseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &card.PurchaseRequest{
		CardId:      cardID,
		Amount:      body.Amount,
		Currency:    body.Currency,
		Date:        body.Date,
		Description: body.Description,
	}
	if req.CategoryId, err = optionalULID(body.CategoryID); err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CardService.RecordPurchase(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Compra registrada com sucesso",
		Transaction: entity,
	})
}

func (h *Handler) ListCardPurchases(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	purchases, err := h.CardService.ListPurchases(ctx, h.scope(c), cardID, c.Query("cycle"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PurchaseListResponse{
		Purchases: purchases,
		Total:     len(purchases),
	})
}

func (h *Handler) SettleCardInvoice(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	cycle := c.Param("cycle")

	ctx := c.Request.Context()
	payment, err := h.CardService.SettleInvoice(ctx, h.scope(c), cardID, cycle)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if payment == nil {
		c.JSON(http.StatusOK, contracts.SettleInvoiceResponse{
			Message: "Nenhuma compra pendente no ciclo",
		})
		return
	}

	c.JSON(http.StatusOK, contracts.SettleInvoiceResponse{
		Message: "Fatura quitada com sucesso",
		Payment: payment,
	})
}

func (h *Handler) GenerateManualInvoice(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.ManualInvoiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	payment, err := h.CardService.GenerateManualInvoice(ctx, h.scope(c), cardID, body.Month, body.Total)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SettleInvoiceResponse{
		Message: "Fatura manual registrada com sucesso",
		Payment: payment,
	})
}

func (h *Handler) ListOrphanPayments(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	orphans, err := h.CardService.ReconcileOrphanPayments(ctx, h.scope(c), cardID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PurchaseListResponse{
		Purchases: orphans,
		Total:     len(orphans),
	})
}
