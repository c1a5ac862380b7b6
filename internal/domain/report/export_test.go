package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mlima3022/Financas/internal/domain/report"
	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeTransactionRepository struct {
	getByDateRangeFn func(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, transactionID, workspaceID ulid.ULID) error {
	return nil
}

func (f *fakeTransactionRepository) GetByID(ctx context.Context, transactionID, workspaceID ulid.ULID) (*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) GetAll(ctx context.Context, workspaceID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeTransactionRepository) GetByDateRange(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]*transaction.Transaction, error) {
	if f.getByDateRangeFn != nil {
		return f.getByDateRangeFn(ctx, workspaceID, from, to)
	}
	return nil, nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func TestExportTransactions(t *testing.T) {
	t.Parallel()

	repo := &fakeTransactionRepository{
		getByDateRangeFn: func(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{
					Type:        transaction.Expense,
					Amount:      12.5,
					Currency:    "BRL",
					Date:        time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
					Description: `mercado "da esquina"`,
				},
				{
					Type:        transaction.Income,
					Amount:      3000,
					Currency:    "BRL",
					Date:        time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
					Description: "salário",
				},
			}, nil
		},
	}
	exporter := report.NewExporter(repo, shared.NewScopeCheckerService(allowAllMembers{}))

	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	content, err := exporter.ExportTransactions(context.Background(), testScope(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(content, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != `"date","type","amount","currency","description"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != `"2026-01-10","expense","12.50","BRL","mercado ""da esquina"""` {
		t.Fatalf("unexpected row: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"3000.00"`) {
		t.Fatalf("amounts must use two decimal places: %s", lines[2])
	}
}

func TestExportTransactionsRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	exporter := report.NewExporter(&fakeTransactionRepository{}, shared.NewScopeCheckerService(allowAllMembers{}))

	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)

	if _, err := exporter.ExportTransactions(context.Background(), testScope(), from, to); err == nil {
		t.Fatal("expected error when end precedes start")
	}
}

func TestExportTransactionsEmptyRange(t *testing.T) {
	t.Parallel()

	exporter := report.NewExporter(&fakeTransactionRepository{}, shared.NewScopeCheckerService(allowAllMembers{}))

	now := time.Now()
	content, err := exporter.ExportTransactions(context.Background(), testScope(), now.AddDate(0, -1, 0), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != `"date","type","amount","currency","description"` {
		t.Fatalf("empty range must still emit the header, got %q", content)
	}
}
