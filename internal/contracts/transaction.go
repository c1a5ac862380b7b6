package contracts

import (
	"time"

	"github.com/mlima3022/Financas/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	AccountID         string    `json:"account_id" binding:"omitempty"`
	TransferAccountID string    `json:"transfer_account_id" binding:"omitempty"`
	CategoryID        string    `json:"category_id" binding:"omitempty"`
	Type              string    `json:"type" binding:"required,oneof=income expense transfer"`
	Amount            float64   `json:"amount" binding:"required,gt=0"`
	Currency          string    `json:"currency" binding:"omitempty,len=3"`
	Date              time.Time `json:"date" binding:"required"`
	Description       string    `json:"description" binding:"omitempty,max=255"`
}

type TransactionUpdateRequest struct {
	AccountID   *string    `json:"account_id" binding:"omitempty"`
	CategoryID  *string    `json:"category_id" binding:"omitempty"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Date        *time.Time `json:"date" binding:"omitempty"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Total        int64                      `json:"total"`
}

type ImportCSVRequest struct {
	Content string            `json:"content" binding:"required"`
	Mapping map[string]string `json:"mapping" binding:"required"`
}

type ImportCSVResponse struct {
	Imported int                      `json:"imported"`
	Failures []transaction.RowFailure `json:"failures"`
}
