package debt

import (
	"context"
	"strings"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository   Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, ScopeChecker: scopeChecker}
}

type CreateDebtRequest struct {
	Name              string
	Creditor          string
	DebtType          Type
	PrincipalAmount   float64
	CurrentAmount     *float64
	InstallmentsTotal *int
	MonthlyAmount     *float64
	StartDate         *time.Time
	InterestRate      *float64
}

// CreateDebt valida a entrada do formulário e monta o registro final.
// Dívida única zera todos os campos de parcelamento, qualquer que
// tenha sido a entrada; dívida parcelada deriva o valor da parcela
// quando não informado.
func (s *Service) CreateDebt(ctx context.Context, scope shared.Scope, req *CreateDebtRequest) (*Debt, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if !req.DebtType.IsValid() {
		return nil, appErrors.NewValidationError("debt_type", "tipo de dívida inválido")
	}
	if req.PrincipalAmount <= 0 {
		return nil, appErrors.NewValidationError("principal_amount", "informe o valor total da dívida")
	}

	entity := &Debt{
		Id:              pkg.GenerateULIDObject(),
		WorkspaceId:     scope.WorkspaceId,
		Name:            name,
		Creditor:        strings.TrimSpace(req.Creditor),
		DebtType:        req.DebtType,
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
	}

	entity.CurrentAmount = req.PrincipalAmount
	if req.CurrentAmount != nil && *req.CurrentAmount > 0 {
		entity.CurrentAmount = *req.CurrentAmount
	}

	switch req.DebtType {
	case TypeInstallment:
		if req.InstallmentsTotal == nil || *req.InstallmentsTotal < 2 {
			return nil, appErrors.NewValidationError("installments_total", "informe a quantidade de parcelas (mínimo 2)")
		}
		if req.StartDate == nil {
			return nil, appErrors.NewValidationError("start_date", "informe a data da primeira parcela")
		}

		entity.InstallmentsTotal = req.InstallmentsTotal
		entity.InstallmentsPaid = 0
		entity.StartDate = req.StartDate

		if req.MonthlyAmount != nil && *req.MonthlyAmount > 0 {
			entity.MonthlyAmount = req.MonthlyAmount
		} else {
			monthly := DeriveMonthlyAmount(req.PrincipalAmount, *req.InstallmentsTotal)
			entity.MonthlyAmount = &monthly
		}

	case TypeSingle:
		entity.InstallmentsTotal = nil
		entity.InstallmentsPaid = 0
		entity.MonthlyAmount = nil
		entity.StartDate = nil
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) ListDebts(ctx context.Context, scope shared.Scope) ([]*Debt, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByWorkspaceID(ctx, scope.WorkspaceId)
}

func (s *Service) GetDebtByID(ctx context.Context, scope shared.Scope, debtID ulid.ULID) (*Debt, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, debtID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrDebtNotFound.WithError(err)
	}
	return entity, nil
}

// PayDebt registra um pagamento. A aritmética de saldo e de contador
// de parcelas vive inteira no repositório, numa única escrita; o
// serviço só rejeita valores não positivos antes de qualquer acesso.
func (s *Service) PayDebt(ctx context.Context, scope shared.Scope, debtID ulid.ULID, amount float64) (*Debt, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if _, err := s.GetDebtByID(ctx, scope, debtID); err != nil {
		return nil, err
	}

	updated, err := s.Repository.ApplyPayment(ctx, debtID, scope.WorkspaceId, amount)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return updated, nil
}

type Summary struct {
	TotalRemaining     float64 `json:"totalRemaining"`
	TotalMonthly       float64 `json:"totalMonthly"`
	ActiveInstallments int     `json:"activeInstallments"`
}

func (s *Service) Summarize(ctx context.Context, scope shared.Scope) (*Summary, error) {
	debts, err := s.ListDebts(ctx, scope)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, d := range debts {
		summary.TotalRemaining += d.CurrentAmount
		if d.MonthlyAmount != nil {
			summary.TotalMonthly += *d.MonthlyAmount
		}
		if d.DebtType == TypeInstallment {
			summary.ActiveInstallments++
		}
	}
	return summary, nil
}
