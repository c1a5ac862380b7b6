package debt

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, debt *Debt) error
	GetByID(ctx context.Context, debtID, workspaceID ulid.ULID) (*Debt, error)
	GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*Debt, error)
	// ApplyPayment abate o valor do saldo devedor e, em dívidas
	// parceladas, avança o contador de parcelas pagas, numa única
	// escrita atômica.
	ApplyPayment(ctx context.Context, debtID, workspaceID ulid.ULID, amount float64) (*Debt, error)
}
