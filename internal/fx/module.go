package fx

import "go.uber.org/fx"

// AppModule agrega os módulos da aplicação na ordem de inicialização.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
)
