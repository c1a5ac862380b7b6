package account

import (
	"context"
	"strings"

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

type CreateAccountRequest struct {
	Name            string
	Type            Type
	Currency        string
	InitialBalance  float64
	LowBalanceAlert *float64
}

func (s *Service) CreateAccount(ctx context.Context, scope shared.Scope, req *CreateAccountRequest) (*Account, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	accountType := req.Type
	if accountType == "" {
		accountType = TypeBank
	}
	if !accountType.IsValid() {
		return nil, appErrors.NewValidationError("type", "tipo de conta inválido")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "BRL"
	}

	entity := &Account{
		Id:              pkg.GenerateULIDObject(),
		WorkspaceId:     scope.WorkspaceId,
		Name:            name,
		Type:            accountType,
		Currency:        currency,
		InitialBalance:  req.InitialBalance,
		LowBalanceAlert: req.LowBalanceAlert,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

type UpdateAccountRequest struct {
	Name            *string
	Type            *Type
	Currency        *string
	LowBalanceAlert *float64
}

func (s *Service) UpdateAccount(ctx context.Context, scope shared.Scope, accountID ulid.ULID, req *UpdateAccountRequest) (*Account, error) {
	entity, err := s.GetAccountByID(ctx, scope, accountID)
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

	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, appErrors.NewValidationError("type", "tipo de conta inválido")
		}
		entity.Type = *req.Type
	}

	if req.Currency != nil {
		entity.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
	}

	if req.LowBalanceAlert != nil {
		entity.LowBalanceAlert = req.LowBalanceAlert
	}

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) DeleteAccount(ctx context.Context, scope shared.Scope, accountID ulid.ULID) error {
	if _, err := s.GetAccountByID(ctx, scope, accountID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, accountID, scope.WorkspaceId)
}

func (s *Service) GetAccountByID(ctx context.Context, scope shared.Scope, accountID ulid.ULID) (*Account, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, accountID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrAccountNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) ListAccounts(ctx context.Context, scope shared.Scope) ([]*Account, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByWorkspaceID(ctx, scope.WorkspaceId)
}
