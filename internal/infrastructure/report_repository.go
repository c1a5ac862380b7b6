package infrastructure

import (
	"context"
	"time"

	"github.com/mlima3022/Financas/internal/domain/report"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

var _ report.Repository = (*ReportRepository)(nil)

func (r *ReportRepository) GetMonthTotals(ctx context.Context, workspaceID ulid.ULID, month string) (float64, float64, error) {
	startDate, _ := time.Parse("2006-01-02", month+"-01")
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)

	var income float64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("workspace_id = ? AND type = ? AND date BETWEEN ? AND ?", workspaceID.String(), "income", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").Scan(&income).Error
	if err != nil {
		return 0, 0, appErrors.NewDatabaseError(err)
	}

	var expenses float64
	err = r.DB.WithContext(ctx).Table("transactions").
		Where("workspace_id = ? AND type = ? AND date BETWEEN ? AND ?", workspaceID.String(), "expense", startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").Scan(&expenses).Error
	if err != nil {
		return 0, 0, appErrors.NewDatabaseError(err)
	}

	return income, expenses, nil
}

func (r *ReportRepository) GetCategorySpend(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]report.CategoryAmount, error) {
	type result struct {
		CategoryId   *string
		CategoryName string
		Amount       float64
		Count        int
	}

	var results []result
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.category_id, COALESCE(c.name, 'Sem categoria') as category_name, COALESCE(SUM(t.amount), 0) as amount, COUNT(*) as count").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.workspace_id = ? AND t.type = ? AND t.date BETWEEN ? AND ?", workspaceID.String(), "expense", from, to).
		Group("t.category_id, c.name").
		Order("amount DESC").
		Scan(&results).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var total float64
	for _, res := range results {
		total += res.Amount
	}

	categories := make([]report.CategoryAmount, 0, len(results))
	for _, res := range results {
		var categoryID *ulid.ULID
		if res.CategoryId != nil && *res.CategoryId != "" {
			parsed, err := pkg.ParseULID(*res.CategoryId)
			if err != nil {
				continue
			}
			categoryID = &parsed
		}

		percentage := 0.0
		if total > 0 {
			percentage = (res.Amount / total) * 100
		}

		categories = append(categories, report.CategoryAmount{
			CategoryId:   categoryID,
			CategoryName: res.CategoryName,
			Amount:       res.Amount,
			Percentage:   percentage,
			Count:        res.Count,
		})
	}

	return categories, nil
}

func (r *ReportRepository) GetMonthlyTrend(ctx context.Context, workspaceID ulid.ULID, months int) ([]report.MonthPoint, error) {
	now := time.Now()
	points := make([]report.MonthPoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		ref := now.AddDate(0, -i, 0)
		month := ref.Format("2006-01")

		income, expenses, err := r.GetMonthTotals(ctx, workspaceID, month)
		if err != nil {
			return nil, err
		}

		points = append(points, report.MonthPoint{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Balance:  income - expenses,
		})
	}

	return points, nil
}

// GetAccountBalance consolida o saldo de todas as contas: saldo
// inicial mais entradas, menos saídas e transferências de saída, mais
// transferências recebidas.
func (r *ReportRepository) GetAccountBalance(ctx context.Context, workspaceID ulid.ULID) (float64, error) {
	var initial float64
	err := r.DB.WithContext(ctx).Table("accounts").
		Where("workspace_id = ?", workspaceID.String()).
		Select("COALESCE(SUM(initial_balance), 0)").Scan(&initial).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	var movement float64
	err = r.DB.WithContext(ctx).Table("transactions").
		Where("workspace_id = ? AND account_id IS NOT NULL", workspaceID.String()).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)").
		Scan(&movement).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	return initial + movement, nil
}
