package contact

import (
	"github.com/yoursport/admin-api/server"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewRepository),
	fx.Provide(NewHandlers),
	fx.Invoke(func(h *Handlers, srv *server.Server) {
		h.RegisterRoutes(srv)
	}),
)
