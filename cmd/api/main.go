package main

import (
	appfx "github.com/mlima3022/Financas/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
