package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	Income   Types = "income"
	Expense  Types = "expense"
	Transfer Types = "transfer"
)

func (t Types) IsValid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

type Transaction struct {
	Id                   ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId          ulid.ULID  `gorm:"type:varchar(26);index:idx_transactions_workspace_id,priority:1;index:idx_transactions_ws_date;not null" json:"workspaceId"`
	AccountId            *ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_account_id" json:"accountId,omitempty"`
	TransferAccountId    *ulid.ULID `gorm:"type:varchar(26)" json:"transferAccountId,omitempty"`
	CategoryId           *ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_category_id" json:"categoryId,omitempty"`
	CardId               *ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_card_cycle,priority:1" json:"cardId,omitempty"`
	DebtId               *ulid.ULID `gorm:"type:varchar(26)" json:"debtId,omitempty"`
	GoalId               *ulid.ULID `gorm:"type:varchar(26)" json:"goalId,omitempty"`
	Type                 Types      `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	Amount               float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency             string     `gorm:"type:varchar(3);not null;default:'BRL'" json:"currency"`
	Date                 time.Time  `gorm:"type:date;not null;index:idx_transactions_ws_date,priority:2" json:"date"`
	Description          string     `gorm:"type:varchar(255)" json:"description"`
	CardCycle            string     `gorm:"type:varchar(7);index:idx_transactions_card_cycle,priority:2" json:"cardCycle,omitempty"`
	IsPaid               bool       `gorm:"not null;default:false" json:"isPaid"`
	PaymentTransactionId *ulid.ULID `gorm:"type:varchar(26);index:idx_transactions_payment_id" json:"paymentTransactionId,omitempty"`
	AccountName          string     `gorm:"-" json:"accountName,omitempty"`
	CategoryName         string     `gorm:"-" json:"categoryName,omitempty"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}
