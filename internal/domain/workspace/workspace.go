package workspace

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Workspace struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	OwnerId   ulid.ULID `gorm:"type:varchar(26);index:idx_workspaces_owner_id;not null" json:"ownerId"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleMember:
		return true
	}
	return false
}

type Member struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId ulid.ULID `gorm:"type:varchar(26);index:idx_workspace_members_ws,unique,composite:ws_user;not null" json:"workspaceId"`
	UserId      ulid.ULID `gorm:"type:varchar(26);index:idx_workspace_members_ws,unique,composite:ws_user;not null" json:"userId"`
	Role        Role      `gorm:"type:varchar(20);not null;default:'MEMBER'" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Member) TableName() string {
	return "workspace_members"
}
