package auth

import (
	"context"

	"github.com/mlima3022/Financas/internal/domain/shared"
	"github.com/mlima3022/Financas/internal/domain/user"
	appErrors "github.com/mlima3022/Financas/internal/errors"

	"github.com/oklog/ulid/v2"
)

// UserDataExport agrupa tudo que pertence ao usuário para a exportação
// exigida por pedidos de portabilidade.
type UserDataExport struct {
	User         *user.User               `json:"user"`
	Workspaces   []map[string]interface{} `json:"workspaces"`
	Transactions []map[string]interface{} `json:"transactions"`
	Debts        []map[string]interface{} `json:"debts"`
	Goals        []map[string]interface{} `json:"goals"`
}

type AccountDataRepository interface {
	ExportUserData(ctx context.Context, userID ulid.ULID) (*UserDataExport, error)
	DeleteUserData(ctx context.Context, userID ulid.ULID) error
}

type AccountDataService struct {
	Repository AccountDataRepository
	Users      shared.UserChecker
}

func NewAccountDataService(repo AccountDataRepository, users shared.UserChecker) *AccountDataService {
	return &AccountDataService{Repository: repo, Users: users}
}

func (s *AccountDataService) ExportUserData(ctx context.Context, userID ulid.ULID) (*UserDataExport, error) {
	if err := s.Users.Exists(ctx, userID); err != nil {
		return nil, err
	}

	export, err := s.Repository.ExportUserData(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	export.User.Password = ""
	return export, nil
}

// DeleteAccount remove o usuário e todos os dados dos workspaces em que
// ele é o único dono. A remoção acontece numa única transação de banco.
func (s *AccountDataService) DeleteAccount(ctx context.Context, userID ulid.ULID) error {
	if err := s.Users.Exists(ctx, userID); err != nil {
		return err
	}

	if err := s.Repository.DeleteUserData(ctx, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
