package debt

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	TypeSingle      Type = "single"
	TypeInstallment Type = "installment"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeInstallment:
		return true
	}
	return false
}

type Debt struct {
	Id                ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	WorkspaceId       ulid.ULID  `gorm:"type:varchar(26);index:idx_debts_workspace_id;not null" json:"workspaceId"`
	Name              string     `gorm:"type:varchar(100);not null" json:"name"`
	Creditor          string     `gorm:"type:varchar(100)" json:"creditor,omitempty"`
	DebtType          Type       `gorm:"type:varchar(20);not null" json:"debtType"`
	PrincipalAmount   float64    `gorm:"type:decimal(15,2);not null" json:"principalAmount"`
	CurrentAmount     float64    `gorm:"type:decimal(15,2);not null" json:"currentAmount"`
	InstallmentsTotal *int       `gorm:"check:installments_total >= 2" json:"installmentsTotal,omitempty"`
	InstallmentsPaid  int        `gorm:"not null;default:0;check:installments_paid >= 0" json:"installmentsPaid"`
	MonthlyAmount     *float64   `gorm:"type:decimal(15,2)" json:"monthlyAmount,omitempty"`
	StartDate         *time.Time `gorm:"type:date" json:"startDate,omitempty"`
	InterestRate      *float64   `gorm:"type:decimal(6,2)" json:"interestRate,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Debt) TableName() string {
	return "debts"
}

// NextDueDate projeta o vencimento da próxima parcela: data inicial
// mais uma quantidade de meses igual às parcelas já pagas. Projeção de
// exibição, nunca persistida. Dívidas únicas e quitadas não têm
// próximo vencimento.
func (d *Debt) NextDueDate() *time.Time {
	if d.DebtType != TypeInstallment || d.StartDate == nil {
		return nil
	}
	if d.InstallmentsTotal != nil && d.InstallmentsPaid >= *d.InstallmentsTotal {
		return nil
	}
	next := d.StartDate.AddDate(0, d.InstallmentsPaid, 0)
	return &next
}
