package card

import (
	"context"

	"github.com/mlima3022/Financas/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, card *Card) error
	Update(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, cardID, workspaceID ulid.ULID) (*Card, error)
	GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*Card, error)
	Delete(ctx context.Context, cardID, workspaceID ulid.ULID) error

	CreatePurchase(ctx context.Context, purchase *transaction.Transaction) error
	GetPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error)
	GetUnpaidPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error)
	// SettleCycle grava o pagamento e marca as linhas como pagas numa
	// única transação de banco: ou tudo é aplicado, ou nada.
	SettleCycle(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error
	// FindOrphanPayments localiza pagamentos de fatura que nenhuma
	// linha referencia. Detecção apenas; nada é alterado.
	FindOrphanPayments(ctx context.Context, workspaceID, cardID ulid.ULID) ([]*transaction.Transaction, error)
}
