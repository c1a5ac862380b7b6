package fx

import (
	"context"

	"github.com/mlima3022/Financas/config"
	"github.com/mlima3022/Financas/internal/logger"
	"github.com/mlima3022/Financas/internal/middleware"
	"github.com/mlima3022/Financas/internal/routes"

	docs "github.com/mlima3022/Financas/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.WorkspaceScope())
	private.Use(middleware.RateLimitByScope())
	{
		users := private.Group("/users")
		{
			users.GET("/me", handler.GetProfile)
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.GET("/me/data", handler.ExportUserData)
			users.DELETE("/me", handler.DeleteUser)
		}

		workspaces := private.Group("/workspaces")
		{
			workspaces.POST("", handler.CreateWorkspace)
			workspaces.GET("", handler.ListWorkspaces)
			workspaces.GET("/:id/role", handler.GetWorkspaceRole)
			workspaces.POST("/:id/members", handler.InviteWorkspaceMember)
		}

		accounts := private.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.GET("/:id", handler.GetAccount)
			accounts.PATCH("/:id", handler.UpdateAccount)
			accounts.DELETE("/:id", handler.DeleteAccount)
		}

		categories := private.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		transactions := private.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.ListTransactions)
			transactions.GET("/export", handler.ExportTransactions)
			transactions.POST("/import", handler.ImportTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		budgets := private.Group("/budgets")
		{
			budgets.PUT("", handler.UpsertBudget)
			budgets.GET("", handler.ListBudgets)
			budgets.DELETE("/:id", handler.DeleteBudget)
		}

		goals := private.Group("/goals")
		{
			goals.POST("", handler.CreateGoal)
			goals.GET("", handler.ListGoals)
			goals.GET("/:id", handler.GetGoal)
			goals.POST("/:id/contribution", handler.AddGoalContribution)
			goals.DELETE("/:id", handler.DeleteGoal)
		}

		debts := private.Group("/debts")
		{
			debts.POST("", handler.CreateDebt)
			debts.GET("", handler.ListDebts)
			debts.GET("/summary", handler.GetDebtSummary)
			debts.POST("/preview", handler.PreviewDebtSchedule)
			debts.GET("/:id", handler.GetDebt)
			debts.POST("/:id/pay", handler.PayDebt)
		}

		cards := private.Group("/cards")
		{
			cards.POST("", handler.CreateCard)
			cards.GET("", handler.ListCards)
			cards.GET("/:id", handler.GetCard)
			cards.PATCH("/:id", handler.UpdateCard)
			cards.DELETE("/:id", handler.DeleteCard)
			cards.POST("/:id/purchases", handler.RecordCardPurchase)
			cards.GET("/:id/purchases", handler.ListCardPurchases)
			cards.POST("/:id/invoices/:cycle/settle", handler.SettleCardInvoice)
			cards.POST("/:id/invoices/manual", handler.GenerateManualInvoice)
			cards.GET("/:id/orphan-payments", handler.ListOrphanPayments)
		}

		notifications := private.Group("/notifications")
		{
			notifications.POST("", handler.CreateNotification)
			notifications.GET("", handler.ListNotifications)
			notifications.POST("/read-all", handler.MarkAllNotificationsRead)
			notifications.POST("/:id/read", handler.MarkNotificationRead)
		}

		reports := private.Group("/reports")
		{
			reports.GET("/dashboard", handler.GetDashboard)
			reports.GET("/category-spend", handler.GetCategorySpend)
			reports.GET("/trend", handler.GetMonthlyTrend)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
