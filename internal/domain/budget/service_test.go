package budget_test

import (
	"context"
	"testing"

	"github.com/mlima3022/Financas/internal/domain/budget"
	"github.com/mlima3022/Financas/internal/domain/category"
	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeBudgetRepository struct {
	upsertFn     func(ctx context.Context, b *budget.Budget) (*budget.Budget, error)
	getByMonthFn func(ctx context.Context, workspaceID ulid.ULID, month string) ([]*budget.Budget, error)
	deleteFn     func(ctx context.Context, budgetID, workspaceID ulid.ULID) error
}

func (f *fakeBudgetRepository) Upsert(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, b)
	}
	return b, nil
}

func (f *fakeBudgetRepository) GetByMonth(ctx context.Context, workspaceID ulid.ULID, month string) ([]*budget.Budget, error) {
	if f.getByMonthFn != nil {
		return f.getByMonthFn(ctx, workspaceID, month)
	}
	return nil, nil
}

func (f *fakeBudgetRepository) Delete(ctx context.Context, budgetID, workspaceID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, budgetID, workspaceID)
	}
	return nil
}

type fakeCategoryRepository struct {
	getByIDFn func(ctx context.Context, categoryID, workspaceID ulid.ULID) (*category.Category, error)
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error { return nil }

func (f *fakeCategoryRepository) GetByID(ctx context.Context, categoryID, workspaceID ulid.ULID) (*category.Category, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, categoryID, workspaceID)
	}
	return &category.Category{Id: categoryID, WorkspaceId: workspaceID, Name: "Mercado"}, nil
}

func (f *fakeCategoryRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*category.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepository) GetByName(ctx context.Context, workspaceID ulid.ULID, name string) (*category.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, categoryID, workspaceID ulid.ULID) error {
	return nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func newBudgetService(repo *fakeBudgetRepository, categoryRepo *fakeCategoryRepository) *budget.Service {
	checker := shared.NewScopeCheckerService(allowAllMembers{})
	return budget.NewService(repo, category.NewService(categoryRepo, checker), checker)
}

func TestUpsertBudgetValidations(t *testing.T) {
	t.Parallel()

	svc := newBudgetService(&fakeBudgetRepository{}, &fakeCategoryRepository{})
	ctx := context.Background()

	tests := []struct {
		name string
		req  *budget.UpsertBudgetRequest
	}{
		{"bad month", &budget.UpsertBudgetRequest{CategoryId: ulid.Make(), Month: "março", Amount: 100}},
		{"month without zero pad", &budget.UpsertBudgetRequest{CategoryId: ulid.Make(), Month: "2026-3", Amount: 100}},
		{"non positive amount", &budget.UpsertBudgetRequest{CategoryId: ulid.Make(), Month: "2026-03", Amount: 0}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpsertBudget(ctx, testScope(), tt.req)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpsertBudgetRequiresExistingCategory(t *testing.T) {
	t.Parallel()

	categoryRepo := &fakeCategoryRepository{
		getByIDFn: func(ctx context.Context, categoryID, workspaceID ulid.ULID) (*category.Category, error) {
			return nil, appErrors.ErrCategoryNotFound
		},
	}
	svc := newBudgetService(&fakeBudgetRepository{}, categoryRepo)

	_, err := svc.UpsertBudget(context.Background(), testScope(), &budget.UpsertBudgetRequest{
		CategoryId: ulid.Make(),
		Month:      "2026-03",
		Amount:     250,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrCategoryNotFound.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrCategoryNotFound.Code, err)
	}
}

func TestUpsertBudgetPersistsScopedEntity(t *testing.T) {
	t.Parallel()

	var saved *budget.Budget
	repo := &fakeBudgetRepository{
		upsertFn: func(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
			saved = b
			return b, nil
		},
	}
	svc := newBudgetService(repo, &fakeCategoryRepository{})

	scope := testScope()
	categoryID := ulid.Make()
	entity, err := svc.UpsertBudget(context.Background(), scope, &budget.UpsertBudgetRequest{
		CategoryId: categoryID,
		Month:      "2026-03",
		Amount:     250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected upsert to reach repository")
	}
	if entity.WorkspaceId != scope.WorkspaceId || entity.CategoryId != categoryID || entity.Month != "2026-03" {
		t.Fatalf("unexpected entity: %+v", entity)
	}
}

func TestListBudgetsRequiresMonth(t *testing.T) {
	t.Parallel()

	svc := newBudgetService(&fakeBudgetRepository{}, &fakeCategoryRepository{})

	if _, err := svc.ListBudgets(context.Background(), testScope(), ""); err == nil {
		t.Fatal("expected error for missing month")
	}
	if _, err := svc.ListBudgets(context.Background(), testScope(), "2026-07"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
