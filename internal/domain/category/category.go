package category

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Category struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId ulid.ULID `gorm:"type:varchar(26);index:idx_categories_workspace_id;not null" json:"workspaceId"`
	Name        string    `gorm:"type:varchar(100);not null;index:idx_categories_ws_name,unique" json:"name"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}
