package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Budget struct {
	Id           ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId  ulid.ULID `gorm:"type:varchar(26);index:idx_budgets_ws_cat_month,unique,priority:1;not null" json:"workspaceId"`
	CategoryId   ulid.ULID `gorm:"type:varchar(26);index:idx_budgets_ws_cat_month,unique,priority:2;not null" json:"categoryId"`
	CategoryName string    `gorm:"-" json:"categoryName,omitempty"`
	Month        string    `gorm:"type:varchar(7);index:idx_budgets_ws_cat_month,unique,priority:3;not null" json:"month"`
	Amount       float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}
