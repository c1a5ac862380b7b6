package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/category"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string    `gorm:"type:varchar(26);index:idx_categories_workspace_id;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(cdb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &category.Category{
		Id:          id,
		WorkspaceId: wsID,
		Name:        cdb.Name,
		CreatedAt:   cdb.CreatedAt,
		UpdatedAt:   cdb.UpdatedAt,
	}, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := &categoryDB{
		Id:          c.Id.String(),
		WorkspaceId: c.WorkspaceId.String(),
		Name:        c.Name,
	}
	if err := r.DB.WithContext(ctx).Table("categories").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID, workspaceID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND workspace_id = ?", categoryID.String(), workspaceID.String()).
		First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("workspace_id = ?", workspaceID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		item, err := toDomainCategory(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, workspaceID ulid.ULID, name string) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("workspace_id = ? AND LOWER(name) = LOWER(?)", workspaceID.String(), name).
		First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID, workspaceID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND workspace_id = ?", categoryID.String(), workspaceID.String()).
		Delete(&categoryDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCategoryNotFound
	}
	return nil
}
