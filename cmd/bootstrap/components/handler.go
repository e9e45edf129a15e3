package components

import (
	"queueline/internal/handler"
	"queueline/internal/handler/api"
	"queueline/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewQueueHandler,
		api.NewRealtimeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
