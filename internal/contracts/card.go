package contracts

import (
	"time"

	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/transaction"
)

type CardCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	LimitAmount float64 `json:"limit_amount" binding:"omitempty,gte=0"`
	ClosingDay  *int    `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay      *int    `json:"due_day" binding:"omitempty,min=1,max=31"`
}

type CardUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=100"`
	LimitAmount *float64 `json:"limit_amount" binding:"omitempty,gte=0"`
	ClosingDay  *int     `json:"closing_day" binding:"omitempty,min=1,max=31"`
	DueDay      *int     `json:"due_day" binding:"omitempty,min=1,max=31"`
}

type CardPurchaseRequest struct {
	CategoryID  string    `json:"category_id" binding:"omitempty"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"omitempty,len=3"`
	Date        time.Time `json:"date" binding:"omitempty"`
	Description string    `json:"description" binding:"omitempty,max=255"`
}

type ManualInvoiceRequest struct {
	Month string  `json:"month" binding:"required,len=7"`
	Total float64 `json:"total" binding:"required,gt=0"`
}

type CardCreateResponse struct {
	Message string     `json:"message"`
	Card    *card.Card `json:"card"`
}

type CardSingleResponse struct {
	Card *card.Card `json:"card"`
}

type CardListResponse struct {
	Cards []*card.Card `json:"cards"`
	Total int          `json:"total"`
}

type SettleInvoiceResponse struct {
	Message string                   `json:"message"`
	Payment *transaction.Transaction `json:"payment,omitempty"`
}

type PurchaseListResponse struct {
	Purchases []*transaction.Transaction `json:"purchases"`
	Total     int                        `json:"total"`
}
