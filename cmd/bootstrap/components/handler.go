package components

import (
	"haggle-service/internal/handler"
	"haggle-service/internal/handler/api"
	"haggle-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNegotiationHandler,
		api.NewTokenHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
