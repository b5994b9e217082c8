package controllers_fx

import (
	"go.uber.org/fx"

	"eventmanager/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewRoleController),
	fx.Provide(controllers.NewPermissionController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewOrganizerController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewEventTypeController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewEventCouponController))
