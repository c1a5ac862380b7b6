package routes

import (
	"net/http"

	"github.com/mlima3022/Financas/internal/contracts"
	"github.com/mlima3022/Financas/internal/domain/workspace"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateWorkspace(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.WorkspaceCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	ws, err := h.WorkspaceService.CreateWorkspace(ctx, userID, body.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.WorkspaceCreateResponse{
		Message:   "Workspace criado com sucesso",
		Workspace: ws,
	})
}

func (h *Handler) ListWorkspaces(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	workspaces, err := h.WorkspaceService.ListWorkspaces(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.WorkspaceListResponse{
		Workspaces: workspaces,
		Total:      len(workspaces),
	})
}

func (h *Handler) GetWorkspaceRole(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	role, err := h.WorkspaceService.GetRole(ctx, workspaceID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.WorkspaceRoleResponse{Role: string(role)})
}

func (h *Handler) InviteWorkspaceMember(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.WorkspaceInviteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	role := workspace.RoleMember
	if body.Role != "" {
		role = workspace.Role(body.Role)
	}

	ctx := c.Request.Context()
	if _, err := h.WorkspaceService.InviteMember(ctx, workspaceID, userID, body.Email, role); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.MessageResponse{Message: "Membro adicionado ao workspace"})
}
