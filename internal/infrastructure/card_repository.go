package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CardRepository struct {
	DB *gorm.DB
}

var _ card.Repository = (*CardRepository)(nil)

type cardDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string    `gorm:"type:varchar(26);index:idx_cards_workspace_id;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	LimitAmount float64   `gorm:"type:decimal(15,2);not null;default:0"`
	ClosingDay  *int      `gorm:""`
	DueDay      *int      `gorm:""`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null"`
}

func (cardDB) TableName() string {
	return "cards"
}

func toDomainCard(cdb *cardDB) (*card.Card, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(cdb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &card.Card{
		Id:          id,
		WorkspaceId: wsID,
		Name:        cdb.Name,
		LimitAmount: cdb.LimitAmount,
		ClosingDay:  cdb.ClosingDay,
		DueDay:      cdb.DueDay,
		CreatedAt:   cdb.CreatedAt,
		UpdatedAt:   cdb.UpdatedAt,
	}, nil
}

func toDBCard(c *card.Card) *cardDB {
	return &cardDB{
		Id:          c.Id.String(),
		WorkspaceId: c.WorkspaceId.String(),
		Name:        c.Name,
		LimitAmount: c.LimitAmount,
		ClosingDay:  c.ClosingDay,
		DueDay:      c.DueDay,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CardRepository) Create(ctx context.Context, c *card.Card) error {
	cdb := toDBCard(c)
	if err := r.DB.WithContext(ctx).Table("cards").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CardRepository) Update(ctx context.Context, c *card.Card) error {
	cdb := toDBCard(c)
	err := r.DB.WithContext(ctx).Table("cards").
		Where("id = ? AND workspace_id = ?", cdb.Id, cdb.WorkspaceId).
		Updates(cdb).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, cardID, workspaceID ulid.ULID) (*card.Card, error) {
	var cdb cardDB
	err := r.DB.WithContext(ctx).Table("cards").
		Where("id = ? AND workspace_id = ?", cardID.String(), workspaceID.String()).
		First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCardNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCard(&cdb)
}

func (r *CardRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*card.Card, error) {
	var rows []cardDB
	err := r.DB.WithContext(ctx).Table("cards").
		Where("workspace_id = ?", workspaceID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*card.Card, 0, len(rows))
	for i := range rows {
		item, err := toDomainCard(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CardRepository) Delete(ctx context.Context, cardID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("cards").
		Where("id = ? AND workspace_id = ?", cardID.String(), workspaceID.String()).
		Delete(&cardDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCardNotFound
	}
	return nil
}

func (r *CardRepository) CreatePurchase(ctx context.Context, purchase *transaction.Transaction) error {
	tdb := toDBTransaction(purchase)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *CardRepository) GetPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
	query := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Where("t.workspace_id = ? AND t.card_id = ?", workspaceID.String(), cardID.String())
	if cycle != "" {
		query = query.Where("t.card_cycle = ?", cycle)
	}

	var rows []transactionDB
	if err := query.Order("t.date DESC, t.created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransactions(rows)
}

func (r *CardRepository) GetUnpaidPurchases(ctx context.Context, workspaceID, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*").
		Where("t.workspace_id = ? AND t.card_id = ? AND t.card_cycle = ? AND t.is_paid = ?",
			workspaceID.String(), cardID.String(), cycle, false).
		Order("t.date ASC, t.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransactions(rows)
}

// SettleCycle grava o pagamento da fatura e marca as linhas do ciclo
// como pagas na mesma transação de banco. Se qualquer passo falhar,
// nada é persistido e o ciclo continua aberto.
func (r *CardRepository) SettleCycle(ctx context.Context, payment *transaction.Transaction, lineIDs []ulid.ULID) error {
	ids := make([]string, 0, len(lineIDs))
	for _, id := range lineIDs {
		ids = append(ids, id.String())
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tdb := toDBTransaction(payment)
		if err := tx.Table("transactions").Create(tdb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("transactions").
			Where("id IN ? AND workspace_id = ? AND is_paid = ?", ids, tdb.WorkspaceId, false).
			Updates(map[string]interface{}{
				"is_paid":                true,
				"payment_transaction_id": tdb.Id,
				"updated_at":             time.Now(),
			})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected != int64(len(ids)) {
			return appErrors.ErrConflict.WithDetails(map[string]interface{}{
				"expected": len(ids),
				"updated":  result.RowsAffected,
			})
		}
		return nil
	})
}

// FindOrphanPayments devolve pagamentos de fatura que nenhuma linha
// referencia. Pagamento de fatura é a despesa do cartão com ciclo
// preenchido e já paga que não aponta para outro pagamento.
func (r *CardRepository) FindOrphanPayments(ctx context.Context, workspaceID, cardID ulid.ULID) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*").
		Where("t.workspace_id = ? AND t.card_id = ? AND t.card_cycle <> '' AND t.is_paid = ? AND t.payment_transaction_id IS NULL",
			workspaceID.String(), cardID.String(), true).
		Where("NOT EXISTS (SELECT 1 FROM transactions l WHERE l.payment_transaction_id = t.id)").
		Order("t.date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransactions(rows)
}

func toDomainTransactions(rows []transactionDB) ([]*transaction.Transaction, error) {
	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		item, err := toDomainTransaction(&rows[i])
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out = append(out, item)
	}
	return out, nil
}
