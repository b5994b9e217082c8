package auth_fx

import (
	"go.uber.org/fx"

	"eventmanager/internal/services"
)

var Module = fx.Provide(services.NewAuthService)
