package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/mlima3022/Financas/internal/domain/debt"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DebtRepository struct {
	DB *gorm.DB
}

var _ debt.Repository = (*DebtRepository)(nil)

type debtDB struct {
	Id                string     `gorm:"type:varchar(26);primaryKey"`
	WorkspaceId       string     `gorm:"type:varchar(26);index:idx_debts_workspace_id;not null"`
	Name              string     `gorm:"type:varchar(100);not null"`
	Creditor          string     `gorm:"type:varchar(100)"`
	DebtType          string     `gorm:"type:varchar(20);not null"`
	PrincipalAmount   float64    `gorm:"type:decimal(15,2);not null"`
	CurrentAmount     float64    `gorm:"type:decimal(15,2);not null"`
	InstallmentsTotal *int       `gorm:""`
	InstallmentsPaid  int        `gorm:"not null;default:0"`
	MonthlyAmount     *float64   `gorm:"type:decimal(15,2)"`
	StartDate         *time.Time `gorm:"type:date"`
	InterestRate      *float64   `gorm:"type:decimal(6,2)"`
	CreatedAt         time.Time  `gorm:"autoCreateTime;not null"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime;not null"`
}

func (debtDB) TableName() string {
	return "debts"
}

func toDomainDebt(ddb *debtDB) (*debt.Debt, error) {
	id, err := pkg.ParseULID(ddb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	wsID, err := pkg.ParseULID(ddb.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &debt.Debt{
		Id:                id,
		WorkspaceId:       wsID,
		Name:              ddb.Name,
		Creditor:          ddb.Creditor,
		DebtType:          debt.Type(ddb.DebtType),
		PrincipalAmount:   ddb.PrincipalAmount,
		CurrentAmount:     ddb.CurrentAmount,
		InstallmentsTotal: ddb.InstallmentsTotal,
		InstallmentsPaid:  ddb.InstallmentsPaid,
		MonthlyAmount:     ddb.MonthlyAmount,
		StartDate:         ddb.StartDate,
		InterestRate:      ddb.InterestRate,
		CreatedAt:         ddb.CreatedAt,
		UpdatedAt:         ddb.UpdatedAt,
	}, nil
}

func toDBDebt(d *debt.Debt) *debtDB {
	return &debtDB{
		Id:                d.Id.String(),
		WorkspaceId:       d.WorkspaceId.String(),
		Name:              d.Name,
		Creditor:          d.Creditor,
		DebtType:          string(d.DebtType),
		PrincipalAmount:   d.PrincipalAmount,
		CurrentAmount:     d.CurrentAmount,
		InstallmentsTotal: d.InstallmentsTotal,
		InstallmentsPaid:  d.InstallmentsPaid,
		MonthlyAmount:     d.MonthlyAmount,
		StartDate:         d.StartDate,
		InterestRate:      d.InterestRate,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *DebtRepository) Create(ctx context.Context, d *debt.Debt) error {
	ddb := toDBDebt(d)
	if err := r.DB.WithContext(ctx).Table("debts").Create(ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *DebtRepository) GetByID(ctx context.Context, debtID, workspaceID ulid.ULID) (*debt.Debt, error) {
	var ddb debtDB
	err := r.DB.WithContext(ctx).Table("debts").
		Where("id = ? AND workspace_id = ?", debtID.String(), workspaceID.String()).
		First(&ddb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrDebtNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainDebt(&ddb)
}

func (r *DebtRepository) GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*debt.Debt, error) {
	var rows []debtDB
	err := r.DB.WithContext(ctx).Table("debts").
		Where("workspace_id = ?", workspaceID.String()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*debt.Debt, 0, len(rows))
	for i := range rows {
		item, err := toDomainDebt(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ApplyPayment trava a linha, abate o saldo devedor (nunca abaixo de
// zero) e avança o contador de parcelas quando a dívida é parcelada,
// tudo na mesma transação de banco. Pagamentos concorrentes sobre a
// mesma dívida serializam no lock da linha.
func (r *DebtRepository) ApplyPayment(ctx context.Context, debtID, workspaceID ulid.ULID, amount float64) (*debt.Debt, error) {
	var updated *debt.Debt

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ddb debtDB
		err := tx.Table("debts").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND workspace_id = ?", debtID.String(), workspaceID.String()).
			First(&ddb).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appErrors.ErrDebtNotFound.WithError(err)
			}
			return appErrors.NewDatabaseError(err)
		}

		newAmount := ddb.CurrentAmount - amount
		if newAmount < 0 {
			newAmount = 0
		}

		values := map[string]interface{}{
			"current_amount": newAmount,
			"updated_at":     time.Now(),
		}
		if ddb.DebtType == string(debt.TypeInstallment) {
			paid := ddb.InstallmentsPaid + 1
			if ddb.InstallmentsTotal != nil && paid > *ddb.InstallmentsTotal {
				paid = *ddb.InstallmentsTotal
			}
			values["installments_paid"] = paid
			ddb.InstallmentsPaid = paid
		}

		if err := tx.Table("debts").Where("id = ?", ddb.Id).Updates(values).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		ddb.CurrentAmount = newAmount
		updated, err = toDomainDebt(&ddb)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
