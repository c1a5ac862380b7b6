package workspace

import (
	"context"
	"strings"

	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateWorkspace(ctx context.Context, userID ulid.ULID, name string) (*Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	ws := &Workspace{
		Id:      pkg.GenerateULIDObject(),
		Name:    name,
		OwnerId: userID,
	}

	if err := s.Repository.Create(ctx, ws); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	member := &Member{
		Id:          pkg.GenerateULIDObject(),
		WorkspaceId: ws.Id,
		UserId:      userID,
		Role:        RoleOwner,
	}
	if err := s.Repository.CreateMember(ctx, member); err != nil {
		_ = s.Repository.Delete(ctx, ws.Id)
		return nil, appErrors.NewDatabaseError(err)
	}

	return ws, nil
}

func (s *Service) ListWorkspaces(ctx context.Context, userID ulid.ULID) ([]*Workspace, error) {
	return s.Repository.GetByUserID(ctx, userID)
}

// GetRole resolve o papel do usuário no workspace. Responde à mesma
// pergunta do antigo RPC workspace_role.
func (s *Service) GetRole(ctx context.Context, workspaceID, userID ulid.ULID) (Role, error) {
	member, err := s.Repository.GetMember(ctx, workspaceID, userID)
	if err != nil {
		return "", appErrors.ErrNotWorkspaceMember.WithError(err)
	}
	return member.Role, nil
}

// EnsureMember bloqueia qualquer operação sem workspace ativo ou feita
// por quem não é membro dele.
func (s *Service) EnsureMember(ctx context.Context, workspaceID, userID ulid.ULID) error {
	if pkg.IsEmptyULID(workspaceID) {
		return appErrors.ErrNoWorkspace
	}
	if _, err := s.Repository.GetMember(ctx, workspaceID, userID); err != nil {
		return appErrors.ErrNotWorkspaceMember.WithError(err)
	}
	return nil
}

func (s *Service) InviteMember(ctx context.Context, workspaceID, userID ulid.ULID, email string, role Role) (*Member, error) {
	callerRole, err := s.GetRole(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if callerRole != RoleOwner {
		return nil, appErrors.ErrForbidden
	}

	if !role.IsValid() {
		role = RoleMember
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, appErrors.NewValidationError("email", "é obrigatório")
	}

	member, err := s.Repository.AddMemberByEmail(ctx, workspaceID, email, role)
	if err != nil {
		return nil, err
	}
	return member, nil
}
