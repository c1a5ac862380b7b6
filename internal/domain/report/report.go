package report

import (
	"github.com/oklog/ulid/v2"
)

type DashboardSummary struct {
	WorkspaceId    ulid.ULID        `json:"workspaceId"`
	Month          string           `json:"month"`
	TotalIncome    float64          `json:"totalIncome"`
	TotalExpenses  float64          `json:"totalExpenses"`
	NetBalance     float64          `json:"netBalance"`
	AccountBalance float64          `json:"accountBalance"`
	DebtRemaining  float64          `json:"debtRemaining"`
	DebtMonthly    float64          `json:"debtMonthly"`
	ByCategory     []CategoryAmount `json:"byCategory"`
}

type CategoryAmount struct {
	CategoryId   *ulid.ULID `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	Amount       float64    `json:"amount"`
	Percentage   float64    `json:"percentage"`
	Count        int        `json:"count"`
}

type MonthPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}
