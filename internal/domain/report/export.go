package report

import (
	"context"
	"strconv"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"
)

type Exporter struct {
	Transactions transaction.Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewExporter(transactions transaction.Repository, scopeChecker *shared.ScopeCheckerService) *Exporter {
	return &Exporter{Transactions: transactions, ScopeChecker: scopeChecker}
}

var exportHeader = []string{"date", "type", "amount", "currency", "description"}

// ExportTransactions gera o CSV do período com todos os campos entre
// aspas, inclusive o cabeçalho.
func (e *Exporter) ExportTransactions(ctx context.Context, scope shared.Scope, from, to time.Time) (string, error) {
	if err := e.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return "", err
	}

	if to.Before(from) {
		return "", appErrors.NewValidationError("to", "deve ser posterior a data inicial")
	}

	transactions, err := e.Transactions.GetByDateRange(ctx, scope.WorkspaceId, from, to)
	if err != nil {
		return "", appErrors.NewDatabaseError(err)
	}

	rows := make([][]string, 0, len(transactions)+1)
	rows = append(rows, exportHeader)
	for _, t := range transactions {
		rows = append(rows, []string{
			t.Date.Format("2006-01-02"),
			string(t.Type),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Currency,
			t.Description,
		})
	}

	return pkg.EncodeCSV(rows), nil
}
