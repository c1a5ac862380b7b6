package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Goal struct {
	Id            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId   ulid.ULID  `gorm:"type:varchar(26);index:idx_goals_workspace_id;not null" json:"workspaceId"`
	Name          string     `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);not null;default:0" json:"currentAmount"`
	TargetDate    *time.Time `gorm:"type:date" json:"targetDate,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Goal) TableName() string {
	return "goals"
}
