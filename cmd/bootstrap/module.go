package bootstrap

import (
	"room-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CatalogModule,
	StorageModule,
	components.RepositoryModule,
	components.RealtimeModule,
	components.UseCaseModule,
	components.HandlerModule,
)
