package components

import (
	"rvmarket/internal/handler"
	"rvmarket/internal/handler/api"
	"rvmarket/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewMessageHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
