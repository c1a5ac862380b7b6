package routes

import (
	"github.com/mlima3022/Financas/internal/domain/account"
	"github.com/mlima3022/Financas/internal/domain/auth"
	"github.com/mlima3022/Financas/internal/domain/budget"
	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/category"
	"github.com/mlima3022/Financas/internal/domain/debt"
	"github.com/mlima3022/Financas/internal/domain/goal"
	"github.com/mlima3022/Financas/internal/domain/notification"
	"github.com/mlima3022/Financas/internal/domain/report"
	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	"github.com/mlima3022/Financas/internal/domain/user"
	"github.com/mlima3022/Financas/internal/domain/workspace"
	appErrors "github.com/mlima3022/Financas/internal/errors"
	"github.com/mlima3022/Financas/internal/logger"
	"github.com/mlima3022/Financas/internal/middleware"
	"github.com/mlima3022/Financas/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService         *user.Service
	AuthService         *auth.Service
	AccountDataService  *auth.AccountDataService
	JwtService          *middleware.JwtService
	WorkspaceService    *workspace.Service
	AccountService      *account.Service
	CategoryService     *category.Service
	TransactionService  *transaction.Service
	BudgetService       *budget.Service
	GoalService         *goal.Service
	DebtService         *debt.Service
	CardService         *card.Service
	NotificationService *notification.Service
	ReportService       *report.Service
	Exporter            *report.Exporter
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

func (h *Handler) scope(c *gin.Context) shared.Scope {
	return middleware.ScopeFromContext(c)
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
