package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type UserChecker interface {
	Exists(ctx context.Context, userID ulid.ULID) error
}

type MemberChecker interface {
	EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error
}
