package fx

import (
	"time"

	"github.com/mlima3022/Financas/internal/domain/account"
	"github.com/mlima3022/Financas/internal/domain/auth"
	"github.com/mlima3022/Financas/internal/domain/budget"
	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/category"
	"github.com/mlima3022/Financas/internal/domain/debt"
	"github.com/mlima3022/Financas/internal/domain/goal"
	"github.com/mlima3022/Financas/internal/domain/notification"
	"github.com/mlima3022/Financas/internal/domain/report"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	"github.com/mlima3022/Financas/internal/domain/user"
	"github.com/mlima3022/Financas/internal/domain/workspace"
	"github.com/mlima3022/Financas/internal/middleware"
	"github.com/mlima3022/Financas/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	accountDataSvc *auth.AccountDataService,
	jwtSvc *middleware.JwtService,
	workspaceSvc *workspace.Service,
	accountSvc *account.Service,
	categorySvc *category.Service,
	transactionSvc *transaction.Service,
	budgetSvc *budget.Service,
	goalSvc *goal.Service,
	debtSvc *debt.Service,
	cardSvc *card.Service,
	notificationSvc *notification.Service,
	reportSvc *report.Service,
	exporter *report.Exporter,
) *routes.Handler {
	return &routes.Handler{
		UserService:         userSvc,
		AuthService:         authSvc,
		AccountDataService:  accountDataSvc,
		JwtService:          jwtSvc,
		WorkspaceService:    workspaceSvc,
		AccountService:      accountSvc,
		CategoryService:     categorySvc,
		TransactionService:  transactionSvc,
		BudgetService:       budgetSvc,
		GoalService:         goalSvc,
		DebtService:         debtSvc,
		CardService:         cardSvc,
		NotificationService: notificationSvc,
		ReportService:       reportSvc,
		Exporter:            exporter,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
