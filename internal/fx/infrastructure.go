package fx

import (
	"github.com/mlima3022/Financas/config"
	"github.com/mlima3022/Financas/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newWorkspaceRepository,
		newAccountRepository,
		newCategoryRepository,
		newTransactionRepository,
		newBudgetRepository,
		newGoalRepository,
		newDebtRepository,
		newCardRepository,
		newNotificationRepository,
		newReportRepository,
		newAccountDataRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newWorkspaceRepository(db *gorm.DB) *infrastructure.WorkspaceRepository {
	return &infrastructure.WorkspaceRepository{DB: db}
}

func newAccountRepository(db *gorm.DB) *infrastructure.AccountRepository {
	return &infrastructure.AccountRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return &infrastructure.BudgetRepository{DB: db}
}

func newGoalRepository(db *gorm.DB) *infrastructure.GoalRepository {
	return &infrastructure.GoalRepository{DB: db}
}

func newDebtRepository(db *gorm.DB) *infrastructure.DebtRepository {
	return &infrastructure.DebtRepository{DB: db}
}

func newCardRepository(db *gorm.DB) *infrastructure.CardRepository {
	return &infrastructure.CardRepository{DB: db}
}

func newNotificationRepository(db *gorm.DB) *infrastructure.NotificationRepository {
	return &infrastructure.NotificationRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}

func newAccountDataRepository(db *gorm.DB, users *infrastructure.UserRepository) *infrastructure.AccountDataRepository {
	return &infrastructure.AccountDataRepository{DB: db, Users: users}
}
