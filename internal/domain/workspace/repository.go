package workspace

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, ws *Workspace) error
	GetByID(ctx context.Context, id ulid.ULID) (*Workspace, error)
	GetByUserID(ctx context.Context, userID ulid.ULID) ([]*Workspace, error)
	Delete(ctx context.Context, id ulid.ULID) error

	CreateMember(ctx context.Context, member *Member) error
	GetMember(ctx context.Context, workspaceID, userID ulid.ULID) (*Member, error)
	AddMemberByEmail(ctx context.Context, workspaceID ulid.ULID, email string, role Role) (*Member, error)
}
