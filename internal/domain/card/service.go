package card

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var cyclePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Service struct {
	Repository   Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, ScopeChecker: scopeChecker}
}

type CreateCardRequest struct {
	Name        string
	LimitAmount float64
	ClosingDay  *int
	DueDay      *int
}

func (s *Service) CreateCard(ctx context.Context, scope shared.Scope, req *CreateCardRequest) (*Card, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if req.LimitAmount < 0 {
		return nil, appErrors.NewValidationError("limit_amount", "deve ser maior ou igual a zero")
	}
	if err := validateDayOfMonth("closing_day", req.ClosingDay); err != nil {
		return nil, err
	}
	if err := validateDayOfMonth("due_day", req.DueDay); err != nil {
		return nil, err
	}

	entity := &Card{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		Name:        name,
		LimitAmount: req.LimitAmount,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

type UpdateCardRequest struct {
	Name        *string
	LimitAmount *float64
	ClosingDay  *int
	DueDay      *int
}

func (s *Service) UpdateCard(ctx context.Context, scope shared.Scope, cardID ulid.ULID, req *UpdateCardRequest) (*Card, error) {
	entity, err := s.GetCardByID(ctx, scope, cardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "não pode ser vazio")
		}
		entity.Name = name
	}
	if req.LimitAmount != nil {
		if *req.LimitAmount < 0 {
			return nil, appErrors.NewValidationError("limit_amount", "deve ser maior ou igual a zero")
		}
		entity.LimitAmount = *req.LimitAmount
	}
	if req.ClosingDay != nil {
		if err := validateDayOfMonth("closing_day", req.ClosingDay); err != nil {
			return nil, err
		}
		entity.ClosingDay = req.ClosingDay
	}
	if req.DueDay != nil {
		if err := validateDayOfMonth("due_day", req.DueDay); err != nil {
			return nil, err
		}
		entity.DueDay = req.DueDay
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) GetCardByID(ctx context.Context, scope shared.Scope, cardID ulid.ULID) (*Card, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, cardID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrCardNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) ListCards(ctx context.Context, scope shared.Scope) ([]*Card, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByWorkspaceID(ctx, scope.WorkspaceId)
}

func (s *Service) DeleteCard(ctx context.Context, scope shared.Scope, cardID ulid.ULID) error {
	if _, err := s.GetCardByID(ctx, scope, cardID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, cardID, scope.WorkspaceId)
}

type PurchaseRequest struct {
	CardId      ulid.ULID
	CategoryId  *ulid.ULID
	Amount      float64
	Currency    string
	Date        time.Time
	Description string
}

// RecordPurchase registra uma compra de cartão como despesa não paga,
// carimbada com o ciclo derivado da data no momento da inserção.
func (s *Service) RecordPurchase(ctx context.Context, scope shared.Scope, req *PurchaseRequest) (*transaction.Transaction, error) {
	card, err := s.GetCardByID(ctx, scope, req.CardId)
	if err != nil {
		return nil, err
	}

	if req.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "BRL"
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &transaction.Transaction{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		CardId:      &card.Id,
		CategoryId:  req.CategoryId,
		Type:        transaction.Expense,
		Amount:      req.Amount,
		Currency:    currency,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		CardCycle:   CycleForDate(date),
		IsPaid:      false,
	}

	if err := s.Repository.CreatePurchase(ctx, purchase); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return purchase, nil
}

func (s *Service) ListPurchases(ctx context.Context, scope shared.Scope, cardID ulid.ULID, cycle string) ([]*transaction.Transaction, error) {
	if _, err := s.GetCardByID(ctx, scope, cardID); err != nil {
		return nil, err
	}
	if cycle != "" && !cyclePattern.MatchString(cycle) {
		return nil, appErrors.NewValidationError("cycle", "deve estar no formato YYYY-MM")
	}
	return s.Repository.GetPurchases(ctx, scope.WorkspaceId, cardID, cycle)
}

// SettleInvoice fecha o ciclo do cartão: soma as linhas não pagas,
// cria um único pagamento e vincula as linhas a ele. Ciclo sem linha
// aberta é um no-op válido e retorna nil sem criar nada. A criação do
// pagamento e a marcação das linhas acontecem na mesma transação de
// banco, então não existe janela com pagamento gravado e linhas ainda
// abertas.
func (s *Service) SettleInvoice(ctx context.Context, scope shared.Scope, cardID ulid.ULID, cycle string) (*transaction.Transaction, error) {
	card, err := s.GetCardByID(ctx, scope, cardID)
	if err != nil {
		return nil, err
	}
	if !cyclePattern.MatchString(cycle) {
		return nil, appErrors.NewValidationError("cycle", "deve estar no formato YYYY-MM")
	}

	unpaid, err := s.Repository.GetUnpaidPurchases(ctx, scope.WorkspaceId, cardID, cycle)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if len(unpaid) == 0 {
		return nil, nil
	}

	currency := unpaid[0].Currency
	total := decimal.Zero
	lineIDs := make([]ulid.ULID, 0, len(unpaid))
	for _, line := range unpaid {
		if line.Currency != currency {
			return nil, appErrors.NewValidationError("cycle", "fatura com moedas diferentes não pode ser somada")
		}
		total = total.Add(decimal.NewFromFloat(line.Amount))
		lineIDs = append(lineIDs, line.Id)
	}

	amount, _ := total.Round(2).Float64()
	payment := &transaction.Transaction{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		CardId:      &card.Id,
		Type:        transaction.Expense,
		Amount:      amount,
		Currency:    currency,
		Date:        time.Now(),
		Description: "Pagamento de fatura " + cycle,
		CardCycle:   cycle,
		IsPaid:      true,
	}

	if err := s.Repository.SettleCycle(ctx, payment, lineIDs); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return payment, nil
}

// GenerateManualInvoice registra uma fatura informada à mão: uma única
// despesa com o total digitado, datada no primeiro dia do mês, sem
// vínculo com linhas de compra. Caminho distinto do fechamento por
// agregação.
func (s *Service) GenerateManualInvoice(ctx context.Context, scope shared.Scope, cardID ulid.ULID, month string, total float64) (*transaction.Transaction, error) {
	card, err := s.GetCardByID(ctx, scope, cardID)
	if err != nil {
		return nil, err
	}
	if !cyclePattern.MatchString(month) {
		return nil, appErrors.NewValidationError("month", "deve estar no formato YYYY-MM")
	}
	if total <= 0 {
		return nil, appErrors.NewValidationError("total", "deve ser maior que zero")
	}

	date, err := time.Parse("2006-01-02", month+"-01")
	if err != nil {
		return nil, appErrors.NewValidationError("month", "mês inválido")
	}

	payment := &transaction.Transaction{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		CardId:      &card.Id,
		Type:        transaction.Expense,
		Amount:      total,
		Currency:    "BRL",
		Date:        date,
		Description: "Pagamento de fatura",
		IsPaid:      true,
	}

	if err := s.Repository.CreatePurchase(ctx, payment); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return payment, nil
}

// ReconcileOrphanPayments reporta pagamentos de fatura sem nenhuma
// linha vinculada. Com o fechamento atômico esses registros só surgem
// de dados anteriores à migração ou de escrita manual; a verificação
// não corrige nada, só devolve o que encontrou.
func (s *Service) ReconcileOrphanPayments(ctx context.Context, scope shared.Scope, cardID ulid.ULID) ([]*transaction.Transaction, error) {
	if _, err := s.GetCardByID(ctx, scope, cardID); err != nil {
		return nil, err
	}
	return s.Repository.FindOrphanPayments(ctx, scope.WorkspaceId, cardID)
}

func validateDayOfMonth(field string, day *int) error {
	if day == nil {
		return nil
	}
	if *day < 1 || *day > 31 {
		return appErrors.NewValidationError(field, "deve estar entre 1 e 31")
	}
	return nil
}
