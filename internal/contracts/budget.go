package contracts

import "github.com/mlima3022/Financas/internal/domain/budget"

type BudgetUpsertRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Month      string  `json:"month" binding:"required,len=7"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
}

type BudgetUpsertResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetListResponse struct {
	Budgets []*budget.Budget `json:"budgets"`
	Total   int              `json:"total"`
}
