package fx

import (
	"github.com/mlima3022/Financas/config"
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
	"github.com/mlima3022/Financas/internal/infrastructure"
	"github.com/mlima3022/Financas/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newWorkspaceService,
		newScopeCheckerService,

		newGoogleOAuthProvider,
		newAuthService,
		newAccountDataService,

		newAccountService,
		newCategoryService,
		newTransactionService,
		newBudgetService,
		newGoalService,
		newDebtService,
		newCardService,
		newNotificationService,
		newReportService,
		newExporter,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newWorkspaceService(repo *infrastructure.WorkspaceRepository) *workspace.Service {
	return workspace.NewService(repo)
}

func newScopeCheckerService(workspaceSvc *workspace.Service) *shared.ScopeCheckerService {
	return shared.NewScopeCheckerService(workspaceSvc)
}

func newGoogleOAuthProvider(cfg *config.Config) auth.OAuthProvider {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
		return nil
	}

	provider, err := auth.NewGoogleOAuthProvider(cfg.GoogleOAuth)
	if err != nil {
		logger.Warn().Err(err).
			Msg("GOOGLE_OAUTH_ENABLED=true mas o provedor não pôde ser configurado. Verifique as variáveis no arquivo .env")
		return nil
	}

	clientIDPreview := cfg.GoogleOAuth.ClientID
	if len(clientIDPreview) > 20 {
		clientIDPreview = clientIDPreview[:20] + "..."
	}
	logger.Info().
		Str("client_id_preview", clientIDPreview).
		Msg("Google OAuth habilitado - Certifique-se de que este Client ID está autorizado no Google Console e corresponde ao usado no frontend")

	return provider
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	provider auth.OAuthProvider,
) *auth.Service {
	return auth.NewService(repo, userSvc, provider)
}

func newAccountDataService(
	repo *infrastructure.AccountDataRepository,
	userSvc *user.Service,
) *auth.AccountDataService {
	return auth.NewAccountDataService(repo, userSvc)
}

func newAccountService(
	repo *infrastructure.AccountRepository,
	scopeChecker *shared.ScopeCheckerService,
) *account.Service {
	return account.NewService(repo, scopeChecker)
}

func newCategoryService(
	repo *infrastructure.CategoryRepository,
	scopeChecker *shared.ScopeCheckerService,
) *category.Service {
	return category.NewService(repo, scopeChecker)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	scopeChecker *shared.ScopeCheckerService,
) *transaction.Service {
	return transaction.NewService(repo, scopeChecker)
}

func newBudgetService(
	repo *infrastructure.BudgetRepository,
	categorySvc *category.Service,
	scopeChecker *shared.ScopeCheckerService,
) *budget.Service {
	return budget.NewService(repo, categorySvc, scopeChecker)
}

func newGoalService(
	repo *infrastructure.GoalRepository,
	scopeChecker *shared.ScopeCheckerService,
) *goal.Service {
	return goal.NewService(repo, scopeChecker)
}

func newDebtService(
	repo *infrastructure.DebtRepository,
	scopeChecker *shared.ScopeCheckerService,
) *debt.Service {
	return debt.NewService(repo, scopeChecker)
}

func newCardService(
	repo *infrastructure.CardRepository,
	scopeChecker *shared.ScopeCheckerService,
) *card.Service {
	return card.NewService(repo, scopeChecker)
}

func newNotificationService(
	repo *infrastructure.NotificationRepository,
	scopeChecker *shared.ScopeCheckerService,
) *notification.Service {
	return notification.NewService(repo, scopeChecker)
}

func newReportService(
	repo *infrastructure.ReportRepository,
	debtSvc *debt.Service,
	scopeChecker *shared.ScopeCheckerService,
) *report.Service {
	return report.NewService(repo, debtSvc, scopeChecker)
}

func newExporter(
	transactionRepo *infrastructure.TransactionRepository,
	scopeChecker *shared.ScopeCheckerService,
) *report.Exporter {
	return report.NewExporter(transactionRepo, scopeChecker)
}
