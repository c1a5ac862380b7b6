package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/goal"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

var _ goal.Repository = (*GoalRepository)(nil)

type goalDB struct {
	Id            string     `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId   string     `gorm:"type:varchar(26);index:idx_goals_workspace_id;not null"`
	Name          string     `gorm:"type:varchar(100);not null"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate    *time.Time `gorm:"type:date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null"`
}

func (goalDB) TableName() string {
	return "goals"
}

func toDomainGoal(gdb *goalDB) (*goal.Goal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(gdb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &goal.Goal{
		Id:            id,
		WorkspaceId:   wsID,
		Name:          gdb.Name,
		TargetAmount:  gdb.TargetAmount,
		CurrentAmount: gdb.CurrentAmount,
		TargetDate:    gdb.TargetDate,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func (r *GoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	gdb := &goalDB{
		Id:            g.Id.String(),
		WorkspaceId:   g.WorkspaceId.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
	}
	if err := r.DB.WithContext(ctx).Table("goals").Create(gdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *GoalRepository) GetByID(ctx context.Context, goalID, workspaceID ulid.ULID) (*goal.Goal, error) {
	var gdb goalDB
	err := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND workspace_id = ?", goalID.String(), workspaceID.String()).
		First(&gdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainGoal(&gdb)
}

func (r *GoalRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*goal.Goal, error) {
	var rows []goalDB
	err := r.DB.WithContext(ctx).Table("goals").
		Where("workspace_id = ?", workspaceID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*goal.Goal, 0, len(rows))
	for i := range rows {
		item, err := toDomainGoal(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *GoalRepository) Delete(ctx context.Context, goalID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ? AND workspace_id = ?", goalID.String(), workspaceID.String()).
		Delete(&goalDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}

// AddToCurrentAmount soma a contribuição direto no banco, sem ler e
// regravar o saldo, para aguentar contribuições concorrentes.
func (r *GoalRepository) AddToCurrentAmount(ctx context.Context, goalID ulid.ULID, delta float64) error {
	result := r.DB.WithContext(ctx).Table("goals").
		Where("id = ?", goalID.String()).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta))
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrGoalNotFound
	}
	return nil
}
