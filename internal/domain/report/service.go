package report

import (
	"context"
	"regexp"
	"time"

	"github.com/mlima3022/Financas/internal/domain/debt"
	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Service struct {
	Repository   Repository
	DebtService  *debt.Service
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, debtService *debt.Service, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, DebtService: debtService, ScopeChecker: scopeChecker}
}

// GetDashboardSummary consolida o mês em uma resposta única: totais de
// entrada e saída, saldo das contas, posição das dívidas e quebra por
// categoria.
func (s *Service) GetDashboardSummary(ctx context.Context, scope shared.Scope, month string) (*DashboardSummary, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !monthPattern.MatchString(month) {
		return nil, appErrors.NewValidationError("month", "deve estar no formato YYYY-MM")
	}

	income, expenses, err := s.Repository.GetMonthTotals(ctx, scope.WorkspaceId, month)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	balance, err := s.Repository.GetAccountBalance(ctx, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	from, to := monthBounds(month)
	byCategory, err := s.Repository.GetCategorySpend(ctx, scope.WorkspaceId, from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	debts, err := s.DebtService.Summarize(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		WorkspaceId:    scope.WorkspaceId,
		Month:          month,
		TotalIncome:    income,
		TotalExpenses:  expenses,
		NetBalance:     income - expenses,
		AccountBalance: balance,
		DebtRemaining:  debts.TotalRemaining,
		DebtMonthly:    debts.TotalMonthly,
		ByCategory:     byCategory,
	}, nil
}

func (s *Service) GetCategorySpend(ctx context.Context, scope shared.Scope, from, to time.Time) ([]CategoryAmount, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	if to.Before(from) {
		return nil, appErrors.NewValidationError("to", "deve ser posterior a data inicial")
	}

	return s.Repository.GetCategorySpend(ctx, scope.WorkspaceId, from, to)
}

func (s *Service) GetMonthlyTrend(ctx context.Context, scope shared.Scope, months int) ([]MonthPoint, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	if months <= 0 {
		months = 6
	}
	if months > 36 {
		return nil, appErrors.NewValidationError("months", "deve ser menor ou igual a 36")
	}

	return s.Repository.GetMonthlyTrend(ctx, scope.WorkspaceId, months)
}

func monthBounds(month string) (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", month+"-01")
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}
