package routes

import (
	"net/http"
	"time"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &transaction.CreateTransactionRequest{
		Type:        transaction.Types(body.Type),
		Amount:      body.Amount,
		Currency:    body.Currency,
		Date:        body.Date,
		Description: body.Description,
	}

	var err error
	if req.AccountId, err = optionalULID(body.AccountID); err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
		return
	}
	if req.TransferAccountId, err = optionalULID(body.TransferAccountID); err != nil {
		h.respondError(c, appErrors.NewValidationError("transfer_account_id", "formato inválido"))
		return
	}
	if req.CategoryId, err = optionalULID(body.CategoryID); err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.CreateTransaction(ctx, h.scope(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transação criada com sucesso",
		Transaction: entity,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	filters := &transaction.Filters{}

	if raw := c.Query("type"); raw != "" {
		transactionType := transaction.Types(raw)
		filters.Type = &transactionType
	}
	var err error
	if filters.AccountId, err = optionalULID(c.Query("account_id")); err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
		return
	}
	if filters.CategoryId, err = optionalULID(c.Query("category_id")); err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}
	if filters.From, err = optionalDate(c.Query("from")); err != nil {
		h.respondError(c, appErrors.NewValidationError("from", "use o formato AAAA-MM-DD"))
		return
	}
	if filters.To, err = optionalDate(c.Query("to")); err != nil {
		h.respondError(c, appErrors.NewValidationError("to", "use o formato AAAA-MM-DD"))
		return
	}

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.ListTransactions(ctx, h.scope(c), filters, h.parsePagination(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
	})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.GetTransaction(ctx, h.scope(c), transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &transaction.UpdateTransactionRequest{
		Amount:      body.Amount,
		Date:        body.Date,
		Description: body.Description,
	}
	if body.AccountID != nil {
		if req.AccountId, err = optionalULID(*body.AccountID); err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
			return
		}
	}
	if body.CategoryID != nil {
		if req.CategoryId, err = optionalULID(*body.CategoryID); err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
	}

	ctx := c.Request.Context()
	entity, err := h.TransactionService.UpdateTransaction(ctx, h.scope(c), transactionID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionCreateResponse{
		Message:     "Transação atualizada com sucesso",
		Transaction: entity,
	})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, h.scope(c), transactionID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transação removida com sucesso"})
}

func (h *Handler) ImportTransactions(c *gin.Context) {
	var body contracts.ImportCSVRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	result, err := h.TransactionService.ImportCSV(ctx, h.scope(c), body.Content, body.Mapping)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ImportCSVResponse{
		Imported: result.Imported,
		Failures: result.Failures,
	})
}

func (h *Handler) ExportTransactions(c *gin.Context) {
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
		start := now.AddDate(0, -1, 0)
		from = &start
	}
	if to == nil {
		to = &now
	}

	ctx := c.Request.Context()
	content, err := h.Exporter.ExportTransactions(ctx, h.scope(c), *from, *to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=transacoes.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func optionalULID(raw string) (*ulid.ULID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := pkg.ParseULID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
