package infrastructure

import (
	"context"

	"github.com/mlima3022/Financas/internal/domain/auth"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type AccountDataRepository struct {
	DB    *gorm.DB
	Users *UserRepository
}

var _ auth.AccountDataRepository = (*AccountDataRepository)(nil)

func (r *AccountDataRepository) ExportUserData(ctx context.Context, userID ulid.ULID) (*auth.UserDataExport, error) {
	entity, err := r.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	export := &auth.UserDataExport{User: entity}

	tables := []struct {
		query string
		dest  *[]map[string]interface{}
	}{
		{
			query: `SELECT w.* FROM workspaces w
				JOIN workspace_members m ON m.workspace_id = w.id
				WHERE m.user_id = ?`,
			dest: &export.Workspaces,
		},
		{
			query: `SELECT t.* FROM transactions t
				JOIN workspace_members m ON m.workspace_id = t.workspace_id
				WHERE m.user_id = ?`,
			dest: &export.Transactions,
		},
		{
			query: `SELECT d.* FROM debts d
				JOIN workspace_members m ON m.workspace_id = d.workspace_id
				WHERE m.user_id = ?`,
			dest: &export.Debts,
		},
		{
			query: `SELECT g.* FROM goals g
				JOIN workspace_members m ON m.workspace_id = g.workspace_id
				WHERE m.user_id = ?`,
			dest: &export.Goals,
		},
	}

	for _, table := range tables {
		var rows []map[string]interface{}
		if err := r.DB.WithContext(ctx).Raw(table.query, userID.String()).Scan(&rows).Error; err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		*table.dest = rows
	}

	return export, nil
}

// DeleteUserData apaga o usuário, suas associações e os workspaces em
// que ele é o dono, com tudo que existe dentro deles, numa única
// transação.
func (r *AccountDataRepository) DeleteUserData(ctx context.Context, userID ulid.ULID) error {
	uid := userID.String()

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ownedIDs []string
		if err := tx.Table("workspaces").Where("owner_id = ?", uid).Pluck("id", &ownedIDs).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		if len(ownedIDs) > 0 {
			scoped := []string{
				"notifications", "budgets", "transactions", "debts",
				"goals", "cards", "categories", "accounts", "workspace_members",
			}
			for _, table := range scoped {
				if err := tx.Exec("DELETE FROM "+table+" WHERE workspace_id IN ?", ownedIDs).Error; err != nil {
					return appErrors.NewDatabaseError(err)
				}
			}
			if err := tx.Exec("DELETE FROM workspaces WHERE id IN ?", ownedIDs).Error; err != nil {
				return appErrors.NewDatabaseError(err)
			}
		}

		if err := tx.Table("workspace_members").Where("user_id = ?", uid).Delete(&workspaceMemberDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("users").Where("id = ?", uid).Delete(&userDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrUserNotFound
		}
		return nil
	})
}
