package controllers_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController))
