package shared

import (
	"context"

	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Scope identifica o workspace ativo e o usuário da requisição.
// Toda operação de domínio recebe um Scope explícito em vez de
// depender de estado ambiente de sessão.
type Scope struct {
	WorkspaceId ulid.ULID
	UserId      ulid.ULID
}

func (s Scope) IsValid() bool {
	return !pkg.IsEmptyULID(s.WorkspaceId) && !pkg.IsEmptyULID(s.UserId)
}

type ScopeCheckerService struct {
	memberChecker MemberChecker
}

func NewScopeCheckerService(memberChecker MemberChecker) *ScopeCheckerService {
	return &ScopeCheckerService{memberChecker: memberChecker}
}

// EnsureScope valida o escopo da requisição: workspace selecionado e
// usuário membro dele. Ausência de workspace bloqueia a operação.
func (s *ScopeCheckerService) EnsureScope(ctx context.Context, scope Scope) error {
	if s.memberChecker == nil {
		return appErrors.ErrInternalServer
	}
	if pkg.IsEmptyULID(scope.WorkspaceId) {
		return appErrors.ErrNoWorkspace
	}
	if pkg.IsEmptyULID(scope.UserId) {
		return appErrors.ErrUnauthorized
	}
	if err := s.memberChecker.EnsureMember(ctx, scope.WorkspaceId, scope.UserId); err != nil {
		return err
	}
	return nil
}
