package transaction

import (
	"context"
	"time"

	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	From       *time.Time
	To         *time.Time
	AccountId  *ulid.ULID
	CategoryId *ulid.ULID
	Type       *Types
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID, workspaceID ulid.ULID) error
	GetByID(ctx context.Context, transactionID, workspaceID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, workspaceID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	GetByDateRange(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]*Transaction, error)
}
