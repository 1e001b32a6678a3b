package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
