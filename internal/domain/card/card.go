package card

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Card struct {
	Id          ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId ulid.ULID `gorm:"type:varchar(26);index:idx_cards_workspace_id;not null" json:"workspaceId"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	LimitAmount float64   `gorm:"type:decimal(15,2);not null;default:0" json:"limitAmount"`
	ClosingDay  *int      `gorm:"check:closing_day >= 1 AND closing_day <= 31" json:"closingDay,omitempty"`
	DueDay      *int      `gorm:"check:due_day >= 1 AND due_day <= 31" json:"dueDay,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Card) TableName() string {
	return "cards"
}

// CycleForDate deriva o ciclo de fatura (YYYY-MM) da data da compra.
// Data zero cai no ciclo corrente. O valor é gravado na inserção e
// nunca recalculado depois.
func CycleForDate(date time.Time) string {
	if date.IsZero() {
		date = time.Now()
	}
	return date.Format("2006-01")
}
