package transaction

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

type CreateTransactionRequest struct {
	AccountId         *ulid.ULID
	TransferAccountId *ulid.ULID
	CategoryId        *ulid.ULID
	CardId            *ulid.ULID
	DebtId            *ulid.ULID
	GoalId            *ulid.ULID
	Type              Types
	Amount            float64
	Currency          string
	Date              time.Time
	Description       string
}

func (s *Service) CreateTransaction(ctx context.Context, scope shared.Scope, req *CreateTransactionRequest) (*Transaction, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	if !req.Type.IsValid() {
		return nil, appErrors.NewValidationError("type", "tipo inválido")
	}
	if req.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if req.Type == Transfer && (req.AccountId == nil || req.TransferAccountId == nil) {
		return nil, appErrors.NewValidationError("transfer_account_id", "transferência exige conta de origem e destino")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "BRL"
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	entity := &Transaction{
		Id:                pkg.GenerateULIDObject(),
		WorkspaceId:       scope.WorkspaceId,
		AccountId:         req.AccountId,
		TransferAccountId: req.TransferAccountId,
		CategoryId:        req.CategoryId,
		CardId:            req.CardId,
		DebtId:            req.DebtId,
		GoalId:            req.GoalId,
		Type:              req.Type,
		Amount:            req.Amount,
		Currency:          currency,
		Date:              date,
		Description:       strings.TrimSpace(req.Description),
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

type UpdateTransactionRequest struct {
	AccountId   *ulid.ULID
	CategoryId  *ulid.ULID
	Amount      *float64
	Date        *time.Time
	Description *string
}

func (s *Service) UpdateTransaction(ctx context.Context, scope shared.Scope, transactionID ulid.ULID, req *UpdateTransactionRequest) (*Transaction, error) {
	entity, err := s.GetTransaction(ctx, scope, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
		}
		entity.Amount = *req.Amount
	}
	if req.AccountId != nil {
		entity.AccountId = req.AccountId
	}
	if req.CategoryId != nil {
		entity.CategoryId = req.CategoryId
	}
	if req.Date != nil {
		// card_cycle é fixado na criação e não acompanha edições de data
		entity.Date = *req.Date
	}
	if req.Description != nil {
		entity.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, scope shared.Scope, transactionID ulid.ULID) error {
	if _, err := s.GetTransaction(ctx, scope, transactionID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, transactionID, scope.WorkspaceId)
}

func (s *Service) GetTransaction(ctx context.Context, scope shared.Scope, transactionID ulid.ULID) (*Transaction, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, transactionID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrTransactionNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) ListTransactions(ctx context.Context, scope shared.Scope, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, 0, err
	}
	return s.Repository.GetAll(ctx, scope.WorkspaceId, filters, pagination)
}
