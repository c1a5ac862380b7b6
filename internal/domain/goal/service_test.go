package goal_test

import (
	"context"
	"testing"

	"github.com/mlima3022/Financas/internal/domain/goal"
	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeGoalRepository struct {
	createFn             func(ctx context.Context, g *goal.Goal) error
	getByIDFn            func(ctx context.Context, goalID, workspaceID ulid.ULID) (*goal.Goal, error)
	getByWorkspaceFn     func(ctx context.Context, workspaceID ulid.ULID) ([]*goal.Goal, error)
	deleteFn             func(ctx context.Context, goalID, workspaceID ulid.ULID) error
	addToCurrentAmountFn func(ctx context.Context, goalID ulid.ULID, delta float64) error
}

func (f *fakeGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if f.createFn != nil {
		return f.createFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) GetByID(ctx context.Context, goalID, workspaceID ulid.ULID) (*goal.Goal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, goalID, workspaceID)
	}
	return &goal.Goal{Id: goalID, WorkspaceId: workspaceID, Name: "Reserva"}, nil
}

func (f *fakeGoalRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*goal.Goal, error) {
	if f.getByWorkspaceFn != nil {
		return f.getByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (f *fakeGoalRepository) Delete(ctx context.Context, goalID, workspaceID ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, goalID, workspaceID)
	}
	return nil
}

func (f *fakeGoalRepository) AddToCurrentAmount(ctx context.Context, goalID ulid.ULID, delta float64) error {
	if f.addToCurrentAmountFn != nil {
		return f.addToCurrentAmountFn(ctx, goalID, delta)
	}
	return nil
}

type allowAllMembers struct{}

func (allowAllMembers) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	return nil
}

func testScope() shared.Scope {
	return shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}
}

func newGoalService(repo *fakeGoalRepository) *goal.Service {
	return goal.NewService(repo, shared.NewScopeCheckerService(allowAllMembers{}))
}

func TestCreateGoalValidations(t *testing.T) {
	t.Parallel()

	svc := newGoalService(&fakeGoalRepository{})
	ctx := context.Background()

	if _, err := svc.CreateGoal(ctx, testScope(), &goal.CreateGoalRequest{Name: "  ", TargetAmount: 100}); err == nil {
		t.Fatal("expected error for blank name")
	}
	if _, err := svc.CreateGoal(ctx, testScope(), &goal.CreateGoalRequest{Name: "Viagem", TargetAmount: 0}); err == nil {
		t.Fatal("expected error for non positive target")
	}
}

func TestAddContribution(t *testing.T) {
	t.Parallel()

	goalID := ulid.Make()

	t.Run("applies delta atomically", func(t *testing.T) {
		var gotDelta float64
		current := 100.0
		repo := &fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, ws ulid.ULID) (*goal.Goal, error) {
				return &goal.Goal{Id: id, WorkspaceId: ws, CurrentAmount: current}, nil
			},
			addToCurrentAmountFn: func(ctx context.Context, id ulid.ULID, delta float64) error {
				gotDelta = delta
				current += delta
				return nil
			},
		}
		svc := newGoalService(repo)

		updated, err := svc.AddContribution(context.Background(), testScope(), goalID, 50)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotDelta != 50 {
			t.Fatalf("expected delta 50, got %v", gotDelta)
		}
		if updated.CurrentAmount != 150 {
			t.Fatalf("expected 150 after contribution, got %v", updated.CurrentAmount)
		}
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		touched := false
		repo := &fakeGoalRepository{
			addToCurrentAmountFn: func(ctx context.Context, id ulid.ULID, delta float64) error {
				touched = true
				return nil
			},
		}
		svc := newGoalService(repo)

		if _, err := svc.AddContribution(context.Background(), testScope(), goalID, -10); err == nil {
			t.Fatal("expected validation error")
		}
		if touched {
			t.Fatal("repository must not be touched for invalid amount")
		}
	})

	t.Run("missing goal", func(t *testing.T) {
		repo := &fakeGoalRepository{
			getByIDFn: func(ctx context.Context, id, ws ulid.ULID) (*goal.Goal, error) {
				return nil, appErrors.ErrGoalNotFound
			},
		}
		svc := newGoalService(repo)

		_, err := svc.AddContribution(context.Background(), testScope(), goalID, 10)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrGoalNotFound.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrGoalNotFound.Code, err)
		}
	})
}
