package account

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID, workspaceID ulid.ULID) error
	GetByID(ctx context.Context, accountID, workspaceID ulid.ULID) (*Account, error)
	GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*Account, error)
}
