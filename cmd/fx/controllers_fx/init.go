package controllers_fx

import (
	"go.uber.org/fx"
	"pahunapath/internal/api"
	"pahunapath/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewMediaController),
	fx.Provide(provideControllers))

func provideControllers(
	accounts *controllers.AccountController,
	places *controllers.PlacesController,
	admin *controllers.AdminController,
	media *controllers.MediaController) api.Controllers {
	return api.Controllers{
		Accounts: accounts,
		Places:   places,
		Admin:    admin,
		Media:    media,
	}
}
