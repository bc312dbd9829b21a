package main

import (
	"github.com/yoursport/admin-api/config"
	"github.com/yoursport/admin-api/database"
	"github.com/yoursport/admin-api/internal/auth"
	"github.com/yoursport/admin-api/internal/contact"
	"github.com/yoursport/admin-api/internal/enduser"
	"github.com/yoursport/admin-api/internal/faq"
	"github.com/yoursport/admin-api/internal/pricing"
	"github.com/yoursport/admin-api/internal/team"
	"github.com/yoursport/admin-api/internal/user"
	"github.com/yoursport/admin-api/server"
	authsvc "github.com/yoursport/admin-api/services/auth"
	jwtsvc "github.com/yoursport/admin-api/services/jwt"
	"github.com/yoursport/admin-api/services/logging"
	"github.com/yoursport/admin-api/services/mail"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.NewProvider(nil),
		logging.Module,
		fx.Supply(database.WithModels(
			&user.User{},
			&authsvc.PasswordResetToken{},
			&pricing.Pricing{},
			&contact.Contact{},
			&team.FootballTeam{},
			&team.PlayerDetail{},
			&faq.FAQ{},
			&enduser.EndUser{},
			&enduser.EndUserDetail{},
		)),
		database.Module,
		server.NewProvider(),
		authsvc.Module,
		jwtsvc.Module,
		mail.Module,
		fx.Invoke(func(srv *server.Server, logger *logging.Service) {
			srv.Use(logging.RequestLogger(logger))
		}),
		user.Module,
		auth.Module,
		pricing.Module,
		contact.Module,
		team.Module,
		faq.Module,
		enduser.Module,
		fx.NopLogger,
	)

	app.Run()
}
