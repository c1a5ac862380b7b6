package contracts

import "github.com/mlima3022/Financas/internal/domain/account"

type AccountCreateRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Type            string   `json:"type" binding:"required,oneof=bank cash digital"`
	Currency        string   `json:"currency" binding:"omitempty,len=3"`
	InitialBalance  float64  `json:"initial_balance" binding:"omitempty"`
	LowBalanceAlert *float64 `json:"low_balance_alert" binding:"omitempty,gte=0"`
}

type AccountUpdateRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=100"`
	Type            *string  `json:"type" binding:"omitempty,oneof=bank cash digital"`
	LowBalanceAlert *float64 `json:"low_balance_alert" binding:"omitempty,gte=0"`
}

type AccountCreateResponse struct {
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountListResponse struct {
	Accounts []*account.Account `json:"accounts"`
	Total    int                `json:"total"`
}
