package goal

import (
	"context"
	"strings"
	"time"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, goalID, workspaceID ulid.ULID) (*Goal, error)
	GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*Goal, error)
	Delete(ctx context.Context, goalID, workspaceID ulid.ULID) error
	AddToCurrentAmount(ctx context.Context, goalID ulid.ULID, delta float64) error
}

type Service struct {
	Repository   Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, ScopeChecker: scopeChecker}
}

type CreateGoalRequest struct {
	Name         string
	TargetAmount float64
	TargetDate   *time.Time
}

func (s *Service) CreateGoal(ctx context.Context, scope shared.Scope, req *CreateGoalRequest) (*Goal, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if req.TargetAmount <= 0 {
		return nil, appErrors.NewValidationError("target_amount", "deve ser maior que zero")
	}

	entity := &Goal{
		Id:           pkg.GenerateULIDObject(),
		WorkspaceId:  scope.WorkspaceId,
		Name:         name,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) ListGoals(ctx context.Context, scope shared.Scope) ([]*Goal, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByWorkspaceID(ctx, scope.WorkspaceId)
}

func (s *Service) GetGoalByID(ctx context.Context, scope shared.Scope, goalID ulid.ULID) (*Goal, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, goalID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrGoalNotFound.WithError(err)
	}
	return entity, nil
}

// AddContribution aplica um aporte à meta, equivalente ao antigo RPC
// add_goal_contribution.
func (s *Service) AddContribution(ctx context.Context, scope shared.Scope, goalID ulid.ULID, amount float64) (*Goal, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if _, err := s.GetGoalByID(ctx, scope, goalID); err != nil {
		return nil, err
	}

	if err := s.Repository.AddToCurrentAmount(ctx, goalID, amount); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return s.GetGoalByID(ctx, scope, goalID)
}

func (s *Service) DeleteGoal(ctx context.Context, scope shared.Scope, goalID ulid.ULID) error {
	if _, err := s.GetGoalByID(ctx, scope, goalID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, goalID, scope.WorkspaceId)
}
