package infrastructure

import (
	"context"
	"time"

	"github.com/mlima3022/Financas/internal/domain/budget"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

type budgetDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId  string    `gorm:"type:varchar(26);uniqueIndex:idx_budgets_ws_cat_month;not null"`
	CategoryId   string    `gorm:"type:varchar(26);uniqueIndex:idx_budgets_ws_cat_month;not null"`
	Month        string    `gorm:"type:varchar(7);uniqueIndex:idx_budgets_ws_cat_month;not null"`
	Amount       float64   `gorm:"type:decimal(15,2);not null"`
	CategoryName string    `gorm:"->;column:category_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(bdb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	catID, err := pkg.ParseULID(bdb.CategoryId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &budget.Budget{
		Id:           id,
		WorkspaceId:  wsID,
		CategoryId:   catID,
		CategoryName: bdb.CategoryName,
		Month:        bdb.Month,
		Amount:       bdb.Amount,
		CreatedAt:    bdb.CreatedAt,
		UpdatedAt:    bdb.UpdatedAt,
	}, nil
}

// Upsert grava o orçamento respeitando a unicidade por workspace,
// categoria e mês: se a linha já existe, só o valor é atualizado.
func (r *BudgetRepository) Upsert(ctx context.Context, b *budget.Budget) (*budget.Budget, error) {
	bdb := &budgetDB{
		Id:          b.Id.String(),
		WorkspaceId: b.WorkspaceId.String(),
		CategoryId:  b.CategoryId.String(),
		Month:       b.Month,
		Amount:      b.Amount,
	}

	err := r.DB.WithContext(ctx).Table("budgets").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "category_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(bdb).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var saved budgetDB
	err = r.DB.WithContext(ctx).Table("budgets").
		Where("workspace_id = ? AND category_id = ? AND month = ?", bdb.WorkspaceId, bdb.CategoryId, bdb.Month).
		First(&saved).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBudget(&saved)
}

func (r *BudgetRepository) GetByMonth(ctx context.Context, workspaceID ulid.ULID, month string) ([]*budget.Budget, error) {
	var rows []budgetDB
	err := r.DB.WithContext(ctx).Table("budgets b").
		Select("b.*, c.name as category_name").
		Joins("LEFT JOIN categories c ON b.category_id = c.id").
		Where("b.workspace_id = ? AND b.month = ?", workspaceID.String(), month).
		Order("c.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*budget.Budget, 0, len(rows))
	for i := range rows {
		item, err := toDomainBudget(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *BudgetRepository) Delete(ctx context.Context, budgetID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("budgets").
		Where("id = ? AND workspace_id = ?", budgetID.String(), workspaceID.String()).
		Delete(&budgetDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNotFound
	}
	return nil
}
