package middleware

import (
	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
)

// WorkspaceHeader carrega o workspace ativo da requisição. O cliente
// escolhe o workspace e manda o id em cada chamada; o servidor não
// guarda essa seleção em sessão.
const WorkspaceHeader = "X-Workspace-Id"

// WorkspaceScope monta o escopo explícito da requisição a partir do
// usuário autenticado e do header de workspace. O header pode estar
// ausente em rotas que não operam dentro de um workspace (listar
// workspaces, perfil); nesses casos o escopo fica com workspace vazio
// e os serviços rejeitam operações que o exigem.
func WorkspaceScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		var scope shared.Scope

		if userID, err := AuthenticatedUserID(c); err == nil {
			scope.UserId = userID
		}

		if raw := c.GetHeader(WorkspaceHeader); raw != "" {
			if wsID, err := pkg.ParseULID(raw); err == nil {
				scope.WorkspaceId = wsID
			}
		}

		c.Set("scope", scope)
		c.Next()
	}
}

// ScopeFromContext recupera o escopo montado pelo WorkspaceScope.
func ScopeFromContext(c *gin.Context) shared.Scope {
	raw, exists := c.Get("scope")
	if !exists {
		return shared.Scope{}
	}
	scope, ok := raw.(shared.Scope)
	if !ok {
		return shared.Scope{}
	}
	return scope
}
