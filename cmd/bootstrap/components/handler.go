package components

import (
	"world-hotels/internal/handler"
	"world-hotels/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
