package debt_test

import (
	"context"
	"testing"
	"time"

	"github.com/mlima3022/Financas/internal/domain/debt"
	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeDebtRepository struct {
	createFn         func(ctx context.Context, d *debt.Debt) error
	getByIDFn        func(ctx context.Context, debtID, workspaceID ulid.ULID) (*debt.Debt, error)
	getByWorkspaceFn func(ctx context.Context, workspaceID ulid.ULID) ([]*debt.Debt, error)
	applyPaymentFn   func(ctx context.Context, debtID, workspaceID ulid.ULID, amount float64) (*debt.Debt, error)
}

func (f *fakeDebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDebtRepository) GetByID(ctx context.Context, debtID, workspaceID ulid.ULID) (*debt.Debt, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, debtID, workspaceID)
	}
	return &debt.Debt{Id: debtID, WorkspaceId: workspaceID}, nil
}

func (f *fakeDebtRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*debt.Debt, error) {
	if f.getByWorkspaceFn != nil {
		return f.getByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (f *fakeDebtRepository) ApplyPayment(ctx context.Context, debtID, workspaceID ulid.ULID, amount float64) (*debt.Debt, error) {
	if f.applyPaymentFn != nil {
		return f.applyPaymentFn(ctx, debtID, workspaceID, amount)
	}
	return &debt.Debt{Id: debtID, WorkspaceId: workspaceID}, nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func newDebtService(repo *fakeDebtRepository) *debt.Service {
	return debt.NewService(repo, shared.NewScopeCheckerService(allowAllMembers{}))
}

func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func datePtr(v time.Time) *time.Time { return &v }

func TestCreateDebtValidations(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *debt.CreateDebtRequest
	}{
		{
			name: "missing name",
			req: &debt.CreateDebtRequest{
				DebtType:        debt.TypeSingle,
				PrincipalAmount: 100,
			},
		},
		{
			name: "invalid type",
			req: &debt.CreateDebtRequest{
				Name:            "Empréstimo",
				DebtType:        "rotativo",
				PrincipalAmount: 100,
			},
		},
		{
			name: "non positive principal",
			req: &debt.CreateDebtRequest{
				Name:            "Empréstimo",
				DebtType:        debt.TypeSingle,
				PrincipalAmount: 0,
			},
		},
		{
			name: "installment without total",
			req: &debt.CreateDebtRequest{
				Name:            "Notebook",
				DebtType:        debt.TypeInstallment,
				PrincipalAmount: 1200,
				StartDate:       datePtr(start),
			},
		},
		{
			name: "installment total below minimum",
			req: &debt.CreateDebtRequest{
				Name:              "Notebook",
				DebtType:          debt.TypeInstallment,
				PrincipalAmount:   1200,
				InstallmentsTotal: intPtr(1),
				StartDate:         datePtr(start),
			},
		},
		{
			name: "installment without start date",
			req: &debt.CreateDebtRequest{
				Name:              "Notebook",
				DebtType:          debt.TypeInstallment,
				PrincipalAmount:   1200,
				InstallmentsTotal: intPtr(12),
			},
		},
	}

	svc := newDebtService(&fakeDebtRepository{})
	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDebt(ctx, testScope(), tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDebtSingleClearsInstallmentFields(t *testing.T) {
	t.Parallel()

	var created *debt.Debt
	repo := &fakeDebtRepository{
		createFn: func(ctx context.Context, d *debt.Debt) error {
			created = d
			return nil
		},
	}
	svc := newDebtService(repo)

	start := time.Now()
	entity, err := svc.CreateDebt(context.Background(), testScope(), &debt.CreateDebtRequest{
		Name:              "Acordo",
		DebtType:          debt.TypeSingle,
		PrincipalAmount:   500,
		InstallmentsTotal: intPtr(12),
		MonthlyAmount:     floatPtr(100),
		StartDate:         datePtr(start),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected debt to be persisted")
	}
	if entity.InstallmentsTotal != nil || entity.MonthlyAmount != nil || entity.StartDate != nil {
		t.Fatalf("single debt must clear installment fields, got %+v", entity)
	}
	if entity.CurrentAmount != 500 {
		t.Fatalf("expected current amount 500, got %v", entity.CurrentAmount)
	}
}

func TestCreateDebtDerivesMonthlyAmount(t *testing.T) {
	t.Parallel()

	svc := newDebtService(&fakeDebtRepository{})

	start := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	entity, err := svc.CreateDebt(context.Background(), testScope(), &debt.CreateDebtRequest{
		Name:              "Celular",
		DebtType:          debt.TypeInstallment,
		PrincipalAmount:   1000,
		InstallmentsTotal: intPtr(3),
		StartDate:         datePtr(start),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.MonthlyAmount == nil || *entity.MonthlyAmount != 333.33 {
		t.Fatalf("expected derived monthly 333.33, got %v", entity.MonthlyAmount)
	}

	t.Run("explicit monthly wins", func(t *testing.T) {
		entity, err := svc.CreateDebt(context.Background(), testScope(), &debt.CreateDebtRequest{
			Name:              "Celular",
			DebtType:          debt.TypeInstallment,
			PrincipalAmount:   1000,
			InstallmentsTotal: intPtr(3),
			MonthlyAmount:     floatPtr(340),
			StartDate:         datePtr(start),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.MonthlyAmount == nil || *entity.MonthlyAmount != 340 {
			t.Fatalf("expected monthly 340, got %v", entity.MonthlyAmount)
		}
	})
}

func TestPayDebt(t *testing.T) {
	t.Parallel()

	scope := testScope()
	debtID := ulid.Make()

	t.Run("rejects non positive amount", func(t *testing.T) {
		called := false
		svc := newDebtService(&fakeDebtRepository{
			applyPaymentFn: func(ctx context.Context, id, ws ulid.ULID, amount float64) (*debt.Debt, error) {
				called = true
				return nil, nil
			},
		})

		if _, err := svc.PayDebt(context.Background(), scope, debtID, 0); err == nil {
			t.Fatal("expected validation error")
		}
		if called {
			t.Fatal("repository must not be touched for invalid amount")
		}
	})

	t.Run("delegates arithmetic to repository", func(t *testing.T) {
		var gotAmount float64
		svc := newDebtService(&fakeDebtRepository{
			applyPaymentFn: func(ctx context.Context, id, ws ulid.ULID, amount float64) (*debt.Debt, error) {
				gotAmount = amount
				return &debt.Debt{Id: id, CurrentAmount: 50}, nil
			},
		})

		updated, err := svc.PayDebt(context.Background(), scope, debtID, 150)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAmount != 150 {
			t.Fatalf("expected amount 150 forwarded, got %v", gotAmount)
		}
		if updated.CurrentAmount != 50 {
			t.Fatalf("expected repository result returned, got %+v", updated)
		}
	})

	t.Run("missing debt", func(t *testing.T) {
		svc := newDebtService(&fakeDebtRepository{
			getByIDFn: func(ctx context.Context, id, ws ulid.ULID) (*debt.Debt, error) {
				return nil, appErrors.ErrDebtNotFound
			},
		})

		_, err := svc.PayDebt(context.Background(), scope, debtID, 10)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrDebtNotFound.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrDebtNotFound.Code, err)
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	monthly := 200.0
	repo := &fakeDebtRepository{
		getByWorkspaceFn: func(ctx context.Context, workspaceID ulid.ULID) ([]*debt.Debt, error) {
			return []*debt.Debt{
				{DebtType: debt.TypeSingle, CurrentAmount: 500},
				{DebtType: debt.TypeInstallment, CurrentAmount: 1200, MonthlyAmount: &monthly},
				{DebtType: debt.TypeInstallment, CurrentAmount: 300, MonthlyAmount: &monthly},
			}, nil
		},
	}
	svc := newDebtService(repo)

	summary, err := svc.Summarize(context.Background(), testScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalRemaining != 2000 {
		t.Fatalf("expected remaining 2000, got %v", summary.TotalRemaining)
	}
	if summary.TotalMonthly != 400 {
		t.Fatalf("expected monthly 400, got %v", summary.TotalMonthly)
	}
	if summary.ActiveInstallments != 2 {
		t.Fatalf("expected 2 active installments, got %d", summary.ActiveInstallments)
	}
}

func TestNextDueDate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	total := 12

	d := &debt.Debt{
		DebtType:          debt.TypeInstallment,
		StartDate:         &start,
		InstallmentsTotal: &total,
		InstallmentsPaid:  3,
	}

	due := d.NextDueDate()
	if due == nil {
		t.Fatal("expected a due date")
	}
	want := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, due)
	}

	t.Run("single debt has none", func(t *testing.T) {
		single := &debt.Debt{DebtType: debt.TypeSingle}
		if single.NextDueDate() != nil {
			t.Fatal("single debt must not project a due date")
		}
	})

	t.Run("fully paid has none", func(t *testing.T) {
		paid := &debt.Debt{
			DebtType:          debt.TypeInstallment,
			StartDate:         &start,
			InstallmentsTotal: &total,
			InstallmentsPaid:  total,
		}
		if paid.NextDueDate() != nil {
			t.Fatal("fully paid debt must not project a due date")
		}
	})
}
