package components

import (
	"gamestore/internal/handler"
	"gamestore/internal/handler/api"
	"gamestore/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewGameHandler,
		api.NewPromotionHandler,
		api.NewPurchaseHandler,
		api.NewLibraryHandler,
		api.NewStatisticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
