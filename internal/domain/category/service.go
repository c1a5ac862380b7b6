package category

import (
	"context"
	"strings"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, categoryID, workspaceID ulid.ULID) (*Category, error)
	GetByWorkspaceID(ctx context.Context, workspaceID ulid.ULID) ([]*Category, error)
	GetByName(ctx context.Context, workspaceID ulid.ULID, name string) (*Category, error)
	Delete(ctx context.Context, categoryID, workspaceID ulid.ULID) error
}

type Service struct {
	Repository   Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, ScopeChecker: scopeChecker}
}

func (s *Service) CreateCategory(ctx context.Context, scope shared.Scope, name string) (*Category, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	existing, _ := s.Repository.GetByName(ctx, scope.WorkspaceId, name)
	if existing != nil {
		return nil, appErrors.NewConflictError("Categoria")
	}

	entity := &Category{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		Name:        name,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) GetCategoryByID(ctx context.Context, scope shared.Scope, categoryID ulid.ULID) (*Category, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	entity, err := s.Repository.GetByID(ctx, categoryID, scope.WorkspaceId)
	if err != nil {
		return nil, appErrors.ErrCategoryNotFound.WithError(err)
	}
	return entity, nil
}

func (s *Service) ListCategories(ctx context.Context, scope shared.Scope) ([]*Category, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByWorkspaceID(ctx, scope.WorkspaceId)
}

func (s *Service) DeleteCategory(ctx context.Context, scope shared.Scope, categoryID ulid.ULID) error {
	if _, err := s.GetCategoryByID(ctx, scope, categoryID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, categoryID, scope.WorkspaceId)
}
