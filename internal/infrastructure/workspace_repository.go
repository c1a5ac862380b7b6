package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/workspace"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type WorkspaceRepository struct {
	DB *gorm.DB
}

var _ workspace.Repository = (*WorkspaceRepository)(nil)

type workspaceDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	OwnerId   string    `gorm:"type:varchar(26);index:idx_workspaces_owner_id;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (workspaceDB) TableName() string {
	return "workspaces"
}

type workspaceMemberDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId string    `gorm:"type:varchar(26);uniqueIndex:idx_workspace_members_ws_user;not null"`
	UserId      string    `gorm:"type:varchar(26);uniqueIndex:idx_workspace_members_ws_user;not null"`
	Role        string    `gorm:"type:varchar(20);not null;default:'MEMBER'"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
}

func (workspaceMemberDB) TableName() string {
	return "workspace_members"
}

func toDomainWorkspace(wdb *workspaceDB) (*workspace.Workspace, error) {
	id, err := pkg.ParseULID(wdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(wdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &workspace.Workspace{
		Id:        id,
		Name:      wdb.Name,
		OwnerId:   ownerID,
		CreatedAt: wdb.CreatedAt,
		UpdatedAt: wdb.UpdatedAt,
	}, nil
}

func toDomainMember(mdb *workspaceMemberDB) (*workspace.Member, error) {
	id, err := pkg.ParseULID(mdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(mdb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(mdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &workspace.Member{
		Id:          id,
		WorkspaceId: wsID,
		UserId:      userID,
		Role:        workspace.Role(mdb.Role),
		CreatedAt:   mdb.CreatedAt,
	}, nil
}

func (r *WorkspaceRepository) Create(ctx context.Context, ws *workspace.Workspace) error {
	wdb := &workspaceDB{
		Id:      ws.Id.String(),
		Name:    ws.Name,
		OwnerId: ws.OwnerId.String(),
	}
	if err := r.DB.WithContext(ctx).Table("workspaces").Create(wdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *WorkspaceRepository) GetByID(ctx context.Context, id ulid.ULID) (*workspace.Workspace, error) {
	var wdb workspaceDB
	if err := r.DB.WithContext(ctx).Table("workspaces").Where("id = ?", id.String()).First(&wdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrWorkspaceNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainWorkspace(&wdb)
}

func (r *WorkspaceRepository) GetByUserID(ctx context.Context, userID ulid.ULID) ([]*workspace.Workspace, error) {
	var rows []workspaceDB
	err := r.DB.WithContext(ctx).Table("workspaces w").
		Select("w.*").
		Joins("JOIN workspace_members m ON m.workspace_id = w.id").
		Where("m.user_id = ?", userID.String()).
		Order("w.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*workspace.Workspace, 0, len(rows))
	for i := range rows {
		item, err := toDomainWorkspace(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("workspace_members").Where("workspace_id = ?", id.String()).Delete(&workspaceMemberDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		result := tx.Table("workspaces").Where("id = ?", id.String()).Delete(&workspaceDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrWorkspaceNotFound
		}
		return nil
	})
}

func (r *WorkspaceRepository) CreateMember(ctx context.Context, member *workspace.Member) error {
	mdb := &workspaceMemberDB{
		Id:          member.Id.String(),
		WorkspaceId: member.WorkspaceId.String(),
		UserId:      member.UserId.String(),
		Role:        string(member.Role),
	}
	if err := r.DB.WithContext(ctx).Table("workspace_members").Create(mdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *WorkspaceRepository) GetMember(ctx context.Context, workspaceID, userID ulid.ULID) (*workspace.Member, error) {
	var mdb workspaceMemberDB
	err := r.DB.WithContext(ctx).Table("workspace_members").
		Where("workspace_id = ? AND user_id = ?", workspaceID.String(), userID.String()).
		First(&mdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNotWorkspaceMember.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMember(&mdb)
}

func (r *WorkspaceRepository) AddMemberByEmail(ctx context.Context, workspaceID ulid.ULID, email string, role workspace.Role) (*workspace.Member, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("email = ?", email).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	mdb := &workspaceMemberDB{
		Id:          pkg.GenerateULID(),
		WorkspaceId: workspaceID.String(),
		UserId:      udb.Id,
		Role:        string(role),
	}
	if err := r.DB.WithContext(ctx).Table("workspace_members").Create(mdb).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMember(mdb)
}
