package contracts

import "github.com/mlima3022/Financas/internal/domain/debt"

type DebtCreateRequest struct {
	Name              string   `json:"name" binding:"required,max=100"`
	Creditor          string   `json:"creditor" binding:"omitempty,max=100"`
	DebtType          string   `json:"debt_type" binding:"required,oneof=single installment"`
	PrincipalAmount   float64  `json:"principal_amount" binding:"required,gt=0"`
	InstallmentsTotal *int     `json:"installments_total" binding:"omitempty,min=2"`
	MonthlyAmount     *float64 `json:"monthly_amount" binding:"omitempty,gt=0"`
	StartDate         string   `json:"start_date" binding:"omitempty"`
	InterestRate      *float64 `json:"interest_rate" binding:"omitempty,gte=0"`
}

type DebtPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type DebtPreviewRequest struct {
	DebtType          string   `json:"debt_type" binding:"omitempty"`
	PrincipalAmount   *float64 `json:"principal_amount" binding:"omitempty"`
	InstallmentsTotal *int     `json:"installments_total" binding:"omitempty"`
	MonthlyAmount     *float64 `json:"monthly_amount" binding:"omitempty"`
}

type DebtPreviewResponse struct {
	Preview string `json:"preview"`
}

type DebtCreateResponse struct {
	Message string     `json:"message"`
	Debt    *debt.Debt `json:"debt"`
}

type DebtSingleResponse struct {
	Debt        *debt.Debt `json:"debt"`
	NextDueDate *string    `json:"nextDueDate,omitempty"`
}

type DebtListResponse struct {
	Debts []*debt.Debt `json:"debts"`
	Total int          `json:"total"`
}

type DebtSummaryResponse struct {
	Summary *debt.Summary `json:"summary"`
}
