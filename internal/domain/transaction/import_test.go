package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeTransactionRepository struct {
	createFn func(ctx context.Context, tx *transaction.Transaction) error
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, tx)
	}
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
	return nil, nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func newTransactionService(repo *fakeTransactionRepository) *transaction.Service {
	return transaction.NewService(repo, shared.NewScopeCheckerService(allowAllMembers{}))
}

var defaultMapping = map[string]string{
	"Data":      "date",
	"Descrição": "description",
	"Valor":     "amount",
	"Tipo":      "type",
}

func TestImportCSVCreatesTransactions(t *testing.T) {
	t.Parallel()

	var created []*transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = append(created, tx)
			return nil
		},
	}
	svc := newTransactionService(repo)

	content := "Data,Descrição,Valor,Tipo\n" +
		"2026-01-10,mercado,120.50,expense\n" +
		"2026-01-15,salário,3000,income\n"

	result, err := svc.ImportCSV(context.Background(), testScope(), content, defaultMapping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d", result.Imported)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("expected no failures, got %v", result.Failures)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 rows persisted, got %d", len(created))
	}
	if created[0].Amount != 120.50 || created[0].Type != transaction.Expense {
		t.Fatalf("unexpected first row: %+v", created[0])
	}
	wantDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !created[0].Date.Equal(wantDate) {
		t.Fatalf("expected date %v, got %v", wantDate, created[0].Date)
	}
	if created[1].Type != transaction.Income {
		t.Fatalf("expected income, got %q", created[1].Type)
	}
}

func TestImportCSVCollectsRowFailures(t *testing.T) {
	t.Parallel()

	var created []*transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = append(created, tx)
			return nil
		},
	}
	svc := newTransactionService(repo)

	content := "Data,Descrição,Valor,Tipo\n" +
		"2026-01-10,ok,50,expense\n" +
		"2026-01-11,valor ruim,abc,expense\n" +
		"2026-01-12,tipo ruim,10,estorno\n" +
		"dez de janeiro,data ruim,10,expense\n" +
		"2026-01-14,negativo,-5,expense\n"

	result, err := svc.ImportCSV(context.Background(), testScope(), content, defaultMapping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %d", result.Imported)
	}
	if len(result.Failures) != 4 {
		t.Fatalf("expected 4 failures, got %v", result.Failures)
	}
	wantLines := []int{3, 4, 5, 6}
	for i, failure := range result.Failures {
		if failure.Line != wantLines[i] {
			t.Fatalf("failure %d: expected line %d, got %d", i, wantLines[i], failure.Line)
		}
		if failure.Reason == "" {
			t.Fatalf("failure %d has no reason", i)
		}
	}
	if len(created) != 1 {
		t.Fatalf("expected only the valid row persisted, got %d", len(created))
	}
}

func TestImportCSVDefaultsTypeToExpense(t *testing.T) {
	t.Parallel()

	var created *transaction.Transaction
	repo := &fakeTransactionRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			created = tx
			return nil
		},
	}
	svc := newTransactionService(repo)

	content := "Data,Valor\n2026-01-10,15\n"
	mapping := map[string]string{"Data": "date", "Valor": "amount"}

	result, err := svc.ImportCSV(context.Background(), testScope(), content, mapping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("expected 1 imported, got %+v", result)
	}
	if created == nil || created.Type != transaction.Expense {
		t.Fatalf("expected default expense, got %+v", created)
	}
}

func TestImportCSVValidatesEnvelope(t *testing.T) {
	t.Parallel()

	svc := newTransactionService(&fakeTransactionRepository{})

	t.Run("no data rows", func(t *testing.T) {
		_, err := svc.ImportCSV(context.Background(), testScope(), "Data,Valor\n", defaultMapping)
		if err == nil {
			t.Fatal("expected error for header-only file")
		}
	})

	t.Run("amount column not mapped", func(t *testing.T) {
		_, err := svc.ImportCSV(context.Background(), testScope(), "A,B\n1,2\n", map[string]string{"A": "date"})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("requires workspace", func(t *testing.T) {
		_, err := svc.ImportCSV(context.Background(), shared.Scope{UserId: ulid.Make()}, "a", defaultMapping)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrNoWorkspace.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrNoWorkspace.Code, err)
		}
	})
}
