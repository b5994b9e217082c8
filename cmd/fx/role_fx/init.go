package role_fx

import (
	"go.uber.org/fx"

	"eventmanager/internal/repositories"
	"eventmanager/internal/services"
)

var Module = fx.Provide(
	repositories.NewRoleRepository,
	repositories.NewPermissionRepository,
	services.NewRoleService,
	services.NewPermissionService,
)
