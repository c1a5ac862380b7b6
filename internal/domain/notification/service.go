package notification

import (
	"context"
	"strings"

	"github.com/mlima3022/Financas/internal/domain/shared"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByUser(ctx context.Context, workspaceID, userID ulid.ULID, onlyUnread bool) ([]*Notification, error)
	GetByID(ctx context.Context, id, workspaceID ulid.ULID) (*Notification, error)
	MarkRead(ctx context.Context, id, workspaceID ulid.ULID) error
	MarkAllRead(ctx context.Context, workspaceID, userID ulid.ULID) error
}

type Service struct {
	Repository   Repository
	ScopeChecker *shared.ScopeCheckerService
}

func NewService(repo Repository, scopeChecker *shared.ScopeCheckerService) *Service {
	return &Service{Repository: repo, ScopeChecker: scopeChecker}
}

type CreateRequest struct {
	Title string
	Body  string
	Kind  string
}

func (s *Service) Create(ctx context.Context, scope shared.Scope, req *CreateRequest) (*Notification, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, appErrors.NewValidationError("title", "é obrigatório")
	}

	kind := req.Kind
	if kind == "" {
		kind = KindGeneral
	}
	switch kind {
	case KindLowBalance, KindBudget, KindDebtDue, KindGeneral:
	default:
		return nil, appErrors.NewValidationError("kind", "tipo de notificação inválido")
	}

	entity := &Notification{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: scope.WorkspaceId,
		UserId:      scope.UserId,
		Title:       title,
		Body:        strings.TrimSpace(req.Body),
		Kind:        kind,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

func (s *Service) List(ctx context.Context, scope shared.Scope, onlyUnread bool) ([]*Notification, error) {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return nil, err
	}
	return s.Repository.GetByUser(ctx, scope.WorkspaceId, scope.UserId, onlyUnread)
}

func (s *Service) MarkRead(ctx context.Context, scope shared.Scope, id ulid.ULID) error {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return err
	}

	if _, err := s.Repository.GetByID(ctx, id, scope.WorkspaceId); err != nil {
		return appErrors.ErrNotificationNotFound.WithError(err)
	}
	return s.Repository.MarkRead(ctx, id, scope.WorkspaceId)
}

func (s *Service) MarkAllRead(ctx context.Context, scope shared.Scope) error {
	if err := s.ScopeChecker.EnsureScope(ctx, scope); err != nil {
		return err
	}
	return s.Repository.MarkAllRead(ctx, scope.WorkspaceId, scope.UserId)
}
