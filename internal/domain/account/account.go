package account

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Account struct {
	Id              ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId     ulid.ULID `gorm:"type:varchar(26);index:idx_accounts_workspace_id;not null" json:"workspaceId"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Type            Type      `gorm:"type:varchar(20);not null" json:"type"`
	Currency        string    `gorm:"type:varchar(3);not null;default:'BRL'" json:"currency"`
	InitialBalance  float64   `gorm:"type:decimal(15,2);not null;default:0" json:"initialBalance"`
	LowBalanceAlert *float64  `gorm:"type:decimal(15,2)" json:"lowBalanceAlert,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}

type Type string

const (
	TypeBank    Type = "bank"
	TypeCash    Type = "cash"
	TypeDigital Type = "digital"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeBank, TypeCash, TypeDigital:
		return true
	}
	return false
}
