package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id                   string     `gorm:"type:varchar(26);primaryKey;column:id"`
	WorkspaceId          string     `gorm:"type:varchar(26);index;not null;column:workspace_id"`
	AccountId            *string    `gorm:"type:varchar(26);index;column:account_id"`
	TransferAccountId    *string    `gorm:"type:varchar(26);column:transfer_account_id"`
	CategoryId           *string    `gorm:"type:varchar(26);index;column:category_id"`
	CardId               *string    `gorm:"type:varchar(26);index;column:card_id"`
	DebtId               *string    `gorm:"type:varchar(26);column:debt_id"`
	GoalId               *string    `gorm:"type:varchar(26);column:goal_id"`
	Type                 string     `gorm:"type:varchar(10);not null;column:type"`
	Amount               float64    `gorm:"not null;column:amount"`
	Currency             string     `gorm:"type:varchar(3);not null;column:currency"`
	Date                 time.Time  `gorm:"not null;column:date"`
	Description          string     `gorm:"size:255;column:description"`
	CardCycle            string     `gorm:"type:varchar(7);column:card_cycle"`
	IsPaid               bool       `gorm:"not null;column:is_paid"`
	PaymentTransactionId *string    `gorm:"type:varchar(26);column:payment_transaction_id"`
	AccountName          string     `gorm:"->;column:account_name"`
	CategoryName         string     `gorm:"->;column:category_name"`
	CreatedAt            time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt            time.Time  `gorm:"not null;column:updated_at"`
}

func parseOptionalULID(s *string) (*ulid.ULID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := pkg.ParseULID(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func optionalULIDString(id *ulid.ULID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	wsID, err := pkg.ParseULID(tdb.WorkspaceId)
	if err != nil {
		return nil, err
	}
	accountID, err := parseOptionalULID(tdb.AccountId)
	if err != nil {
		return nil, err
	}
	transferID, err := parseOptionalULID(tdb.TransferAccountId)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalULID(tdb.CategoryId)
	if err != nil {
		return nil, err
	}
	cardID, err := parseOptionalULID(tdb.CardId)
	if err != nil {
		return nil, err
	}
	debtID, err := parseOptionalULID(tdb.DebtId)
	if err != nil {
		return nil, err
	}
	goalID, err := parseOptionalULID(tdb.GoalId)
	if err != nil {
		return nil, err
	}
	paymentID, err := parseOptionalULID(tdb.PaymentTransactionId)
	if err != nil {
		return nil, err
	}

	return &transaction.Transaction{
		Id:                   id,
		WorkspaceId:          wsID,
		AccountId:            accountID,
		TransferAccountId:    transferID,
		CategoryId:           categoryID,
		CardId:               cardID,
		DebtId:               debtID,
		GoalId:               goalID,
		Type:                 transaction.Types(tdb.Type),
		Amount:               tdb.Amount,
		Currency:             tdb.Currency,
		Date:                 tdb.Date,
		Description:          tdb.Description,
		CardCycle:            tdb.CardCycle,
		IsPaid:               tdb.IsPaid,
		PaymentTransactionId: paymentID,
		AccountName:          tdb.AccountName,
		CategoryName:         tdb.CategoryName,
		CreatedAt:            tdb.CreatedAt,
		UpdatedAt:            tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	return &transactionDB{
		Id:                   t.Id.String(),
		WorkspaceId:          t.WorkspaceId.String(),
		AccountId:            optionalULIDString(t.AccountId),
		TransferAccountId:    optionalULIDString(t.TransferAccountId),
		CategoryId:           optionalULIDString(t.CategoryId),
		CardId:               optionalULIDString(t.CardId),
		DebtId:               optionalULIDString(t.DebtId),
		GoalId:               optionalULIDString(t.GoalId),
		Type:                 string(t.Type),
		Amount:               t.Amount,
		Currency:             t.Currency,
		Date:                 t.Date,
		Description:          t.Description,
		CardCycle:            t.CardCycle,
		IsPaid:               t.IsPaid,
		PaymentTransactionId: optionalULIDString(t.PaymentTransactionId),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND workspace_id = ?", tdb.Id, tdb.WorkspaceId).
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND workspace_id = ?", transactionID.String(), workspaceID.String()).
		Delete(&transactionDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, transactionID, workspaceID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name, a.name as account_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Joins("LEFT JOIN accounts a ON t.account_id = a.id").
		Where("t.id = ? AND t.workspace_id = ?", transactionID.String(), workspaceID.String()).
		First(&tdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) GetAll(ctx context.Context, workspaceID ulid.ULID, filters *transaction.Filters, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	countQuery := r.DB.WithContext(ctx).Table("transactions t").Where("t.workspace_id = ?", workspaceID.String())
	dataQuery := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name, a.name as account_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Joins("LEFT JOIN accounts a ON t.account_id = a.id").
		Where("t.workspace_id = ?", workspaceID.String())

	if filters != nil {
		if filters.Type != nil && *filters.Type != "" {
			countQuery = countQuery.Where("t.type = ?", string(*filters.Type))
			dataQuery = dataQuery.Where("t.type = ?", string(*filters.Type))
		}
		if filters.AccountId != nil {
			countQuery = countQuery.Where("t.account_id = ?", filters.AccountId.String())
			dataQuery = dataQuery.Where("t.account_id = ?", filters.AccountId.String())
		}
		if filters.CategoryId != nil {
			countQuery = countQuery.Where("t.category_id = ?", filters.CategoryId.String())
			dataQuery = dataQuery.Where("t.category_id = ?", filters.CategoryId.String())
		}
		if filters.From != nil {
			countQuery = countQuery.Where("t.date >= ?", *filters.From)
			dataQuery = dataQuery.Where("t.date >= ?", *filters.From)
		}
		if filters.To != nil {
			countQuery = countQuery.Where("t.date <= ?", *filters.To)
			dataQuery = dataQuery.Where("t.date <= ?", *filters.To)
		}
	}

	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []transactionDB
	err := dataQuery.Order("t.date DESC, t.created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		item, err := toDomainTransaction(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}

	return out, total, nil
}

func (r *TransactionRepository) GetByDateRange(ctx context.Context, workspaceID ulid.ULID, from, to time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions t").
		Select("t.*, c.name as category_name, a.name as account_name").
		Joins("LEFT JOIN categories c ON t.category_id = c.id").
		Joins("LEFT JOIN accounts a ON t.account_id = a.id").
		Where("t.workspace_id = ? AND t.date >= ? AND t.date <= ?", workspaceID.String(), from, to).
		Order("t.date ASC, t.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		item, err := toDomainTransaction(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
