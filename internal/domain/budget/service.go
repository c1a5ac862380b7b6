package budget

import (
	"context"
	"regexp"

	"github.com/mlima3022/Financas/internal/domain/category"
	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Repository interface {
	Upsert(ctx context.Context, budget *Budget) (*Budget, error)
	GetByMonth(ctx context.Context, workspaceID ulid.ULID, month string) ([]*Budget, error)
	Delete(ctx context.Context, budgetID, workspaceID ulid.ULID) error
}

type Service struct {
	Repository      Repository
	CategoryService *category.Service
	ScopeChecker    *shared.ScopeCheckerService
}

func NewService(repo Repository, categorySvc *category.Service, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, CategoryService: categorySvc, ScopeChecker: scopeChecker}
}

type UpsertBudgetRequest struct {
	CategoryId ulid.ULID
	Month      string
	Amount     float64
}

// UpsertBudget cria ou substitui o orçamento da chave
// (workspace, categoria, mês).
func (s *Service) UpsertBudget(ctx context.Context, scope shared.Scope, req *UpsertBudgetRequest) (*Budget, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	if !monthPattern.MatchString(req.Month) {
		return nil, appErrors.NewValidationError("month", "deve estar no formato YYYY-MM")
	}
	if req.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if _, err := s.CategoryService.GetCategoryByID(ctx, scope, req.CategoryId); err != nil {
		return nil, err
	}

	entity := &Budget{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		CategoryId:  req.CategoryId,
		Month:       req.Month,
		Amount:      req.Amount,
	}

	saved, err := s.Repository.Upsert(ctx, entity)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return saved, nil
}

func (s *Service) ListBudgets(ctx context.Context, scope shared.Scope, month string) ([]*Budget, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	if !monthPattern.MatchString(month) {
		return nil, appErrors.NewValidationError("month", "deve estar no formato YYYY-MM")
	}
	return s.Repository.GetByMonth(ctx, scope.WorkspaceId, month)
}

func (s *Service) DeleteBudget(ctx context.Context, scope shared.Scope, budgetID ulid.ULID) error {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, budgetID, scope.WorkspaceId)
}
