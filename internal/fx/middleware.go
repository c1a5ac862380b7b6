package fx

import (
	"github.com/mlima3022/Financas/config"
	"github.com/mlima3022/Financas/internal/domain/user"
	"github.com/mlima3022/Financas/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
