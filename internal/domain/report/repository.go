package report

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	GetMonthTotals(ctx context.Context, workspaceID ulid.ULID, month string) (income, expenses float64, err error)
	GetCategorySpend(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]CategoryAmount, error)
	GetMonthlyTrend(ctx context.Context, workspaceID ulid.ULID, months int) ([]MonthPoint, error)
	GetAccountBalance(ctx context.Context, workspaceID ulid.ULID) (float64, error)
}
