package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/account"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

var _ account.Repository = (*AccountRepository)(nil)

type accountDB struct {
	Id              string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId     string    `gorm:"type:varchar(26);index:idx_accounts_workspace_id;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Type            string    `gorm:"type:varchar(20);not null"`
	Currency        string    `gorm:"type:varchar(3);not null;default:'BRL'"`
	InitialBalance  float64   `gorm:"type:decimal(15,2);not null;default:0"`
	LowBalanceAlert *float64  `gorm:"type:decimal(15,2)"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null"`
}

func (accountDB) TableName() string {
	return "accounts"
}

func toDomainAccount(adb *accountDB) (*account.Account, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(adb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &account.Account{
		Id:              id,
		WorkspaceId:     wsID,
		Name:            adb.Name,
		Type:            account.Type(adb.Type),
		Currency:        adb.Currency,
		InitialBalance:  adb.InitialBalance,
		LowBalanceAlert: adb.LowBalanceAlert,
		CreatedAt:       adb.CreatedAt,
		UpdatedAt:       adb.UpdatedAt,
	}, nil
}

func toDBAccount(a *account.Account) *accountDB {
	return &accountDB{
		Id:              a.Id.String(),
		WorkspaceId:     a.WorkspaceId.String(),
		Name:            a.Name,
		Type:            string(a.Type),
		Currency:        a.Currency,
		InitialBalance:  a.InitialBalance,
		LowBalanceAlert: a.LowBalanceAlert,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	if err := r.DB.WithContext(ctx).Table("accounts").Create(adb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	err := r.DB.WithContext(ctx).Table("accounts").
		Where("id = ? AND workspace_id = ?", adb.Id, adb.WorkspaceId).
		Updates(adb).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("accounts").
		Where("id = ? AND workspace_id = ?", accountID.String(), workspaceID.String()).
		Delete(&accountDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID, workspaceID ulid.ULID) (*account.Account, error) {
	var adb accountDB
	err := r.DB.WithContext(ctx).Table("accounts").
		Where("id = ? AND workspace_id = ?", accountID.String(), workspaceID.String()).
		First(&adb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainAccount(&adb)
}

func (r *AccountRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*account.Account, error) {
	var rows []accountDB
	err := r.DB.WithContext(ctx).Table("accounts").
		Where("workspace_id = ?", workspaceID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*account.Account, 0, len(rows))
	for i := range rows {
		item, err := toDomainAccount(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
