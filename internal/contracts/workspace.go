package contracts

import "github.com/mlima3022/Financas/internal/domain/workspace"

type WorkspaceCreateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type WorkspaceInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=OWNER MEMBER"`
}

type WorkspaceCreateResponse struct {
	Message   string               `json:"message"`
	Workspace *workspace.Workspace `json:"workspace"`
}

type WorkspaceListResponse struct {
	Workspaces []*workspace.Workspace `json:"workspaces"`
	Total      int                    `json:"total"`
}

type WorkspaceRoleResponse struct {
	Role string `json:"role"`
}
