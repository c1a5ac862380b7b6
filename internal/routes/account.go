package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/account"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &account.CreateAccountRequest{
		Name:            body.Name,
		Type:            account.Type(body.Type),
		Currency:        body.Currency,
		InitialBalance:  body.InitialBalance,
		LowBalanceAlert: body.LowBalanceAlert,
	}

	ctx := c.Request.Context()
	entity, err := h.AccountService.CreateAccount(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Conta criada com sucesso",
		Account: entity,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	accounts, err := h.AccountService.ListAccounts(ctx, h.scope(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

func (h *Handler) GetAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.AccountService.GetAccountByID(ctx, h.scope(c), accountID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &account.UpdateAccountRequest{
		Name:            body.Name,
		LowBalanceAlert: body.LowBalanceAlert,
	}
	if body.Type != nil {
		accountType := account.Type(*body.Type)
		req.Type = &accountType
	}

	ctx := c.Request.Context()
	entity, err := h.AccountService.UpdateAccount(ctx, h.scope(c), accountID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountCreateResponse{
		Message: "Conta atualizada com sucesso",
		Account: entity,
	})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.AccountService.DeleteAccount(ctx, h.scope(c), accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta removida com sucesso"})
}
