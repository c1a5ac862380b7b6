package notification

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Notification struct {
	Id          ulid.ULID `json:"id" gorm:"type:varchar(26);primaryKey"`
	WorkspaceId ulid.ULID `json:"workspaceId" gorm:"type:varchar(26);not null;index"`
	UserId      ulid.ULID `json:"userId" gorm:"type:varchar(26);not null;index"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Body        string    `json:"body" gorm:"type:text"`
	Kind        string    `json:"kind" gorm:"type:varchar(50);not null"`
	IsRead      bool      `json:"isRead" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	KindLowBalance = "low_balance"
	KindBudget     = "budget"
	KindDebtDue    = "debt_due"
	KindGeneral    = "general"
)
