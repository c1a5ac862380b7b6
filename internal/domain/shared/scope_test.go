package shared_test

import (
	"context"
	"testing"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

type fakeMemberChecker struct {
	ensureMemberFn func(ctx context.Context, workspaceID, userID ulid.ULID) error
}

func (f *fakeMemberChecker) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	if f.ensureMemberFn != nil {
		return f.ensureMemberFn(ctx, workspaceID, userID)
	}
	return nil
}

func TestEnsureScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	workspaceID := ulid.Make()
	userID := ulid.Make()

	t.Run("valid member passes", func(t *testing.T) {
		var gotWorkspace, gotUser ulid.ULID
		checker := shared.NewScopeCheckerService(&fakeMemberChecker{
			ensureMemberFn: func(ctx context.Context, ws, u ulid.ULID) error {
				gotWorkspace, gotUser = ws, u
				return nil
			},
		})

		err := checker.EnsureScope(ctx, shared.Scope{WorkspaceId: workspaceID, UserId: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotWorkspace != workspaceID || gotUser != userID {
			t.Fatal("membership must be checked for the request scope")
		}
	})

	t.Run("missing workspace", func(t *testing.T) {
		checker := shared.NewScopeCheckerService(&fakeMemberChecker{})

		err := checker.EnsureScope(ctx, shared.Scope{UserId: userID})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrNoWorkspace.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrNoWorkspace.Code, err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		checker := shared.NewScopeCheckerService(&fakeMemberChecker{})

		err := checker.EnsureScope(ctx, shared.Scope{WorkspaceId: workspaceID})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrUnauthorized.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrUnauthorized.Code, err)
		}
	})

	t.Run("non member is rejected", func(t *testing.T) {
		checker := shared.NewScopeCheckerService(&fakeMemberChecker{
			ensureMemberFn: func(ctx context.Context, ws, u ulid.ULID) error {
				return appErrors.ErrNotWorkspaceMember
			},
		})

		err := checker.EnsureScope(ctx, shared.Scope{WorkspaceId: workspaceID, UserId: userID})
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrNotWorkspaceMember.Code {
			t.Fatalf("expected %s, got %v", appErrors.ErrNotWorkspaceMember.Code, err)
		}
	})
}

func TestScopeIsValid(t *testing.T) {
	t.Parallel()

	if (shared.Scope{}).IsValid() {
		t.Fatal("empty scope must be invalid")
	}
	if (shared.Scope{WorkspaceId: ulid.Make()}).IsValid() {
		t.Fatal("scope without user must be invalid")
	}
	if !(shared.Scope{WorkspaceId: ulid.Make(), UserId: ulid.Make()}).IsValid() {
		t.Fatal("full scope must be valid")
	}
}
