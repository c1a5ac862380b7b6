package infrastructure

import (
	"github.com/mlima3022/Financas/config"
	"github.com/mlima3022/Financas/internal/domain/account"
	"github.com/mlima3022/Financas/internal/domain/budget"
	"github.com/mlima3022/Financas/internal/domain/card"
	"github.com/mlima3022/Financas/internal/domain/category"
	"github.com/mlima3022/Financas/internal/domain/debt"
	"github.com/mlima3022/Financas/internal/domain/goal"
	"github.com/mlima3022/Financas/internal/domain/notification"
	"github.com/mlima3022/Financas/internal/domain/transaction"
	"github.com/mlima3022/Financas/internal/domain/user"
	"github.com/mlima3022/Financas/internal/domain/workspace"
	"github.com/mlima3022/Financas/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&user.User{},
		&workspace.Workspace{},
		&workspace.Member{},
		&account.Account{},
		&category.Category{},
		&transaction.Transaction{},
		&budget.Budget{},
		&goal.Goal{},
		&debt.Debt{},
		&card.Card{},
		&notification.Notification{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *user.User:
		return "User"
	case *workspace.Workspace:
		return "Workspace"
	case *workspace.Member:
		return "WorkspaceMember"
	case *account.Account:
		return "Account"
	case *category.Category:
		return "Category"
	case *transaction.Transaction:
		return "Transaction"
	case *budget.Budget:
		return "Budget"
	case *goal.Goal:
		return "Goal"
	case *debt.Debt:
		return "Debt"
	case *card.Card:
		return "Card"
	case *notification.Notification:
		return "Notification"
	default:
		return "Unknown"
	}
}
