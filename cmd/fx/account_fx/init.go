package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"eventmanager/internal/config"
	"eventmanager/internal/models/db_models"
	"eventmanager/internal/repositories"
	"eventmanager/internal/services"
)

var Module = fx.Provide(
	repositories.NewAdminRepository,
	repositories.NewOrganizerRepository,
	repositories.NewUserRepository,
	provideAdminService,
	provideOrganizerService,
	provideUserService,
)

func accountConfig(cfg *config.Config, defaultRoleID string) services.AccountConfig {
	return services.AccountConfig{
		DefaultRoleID:   defaultRoleID,
		ResetTokenTTL:   cfg.ResetTokenTTL,
		ResetTokenBytes: cfg.ResetTokenBytes,
	}
}

func provideAdminService(
	repo repositories.AccountRepository[db_models.Admin],
	roleService services.RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg *config.Config,
	logger *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(repo, roleService, tx, accountConfig(cfg, cfg.DefaultAdminRoleID), logger)
}

func provideOrganizerService(
	repo repositories.AccountRepository[db_models.Organizer],
	roleService services.RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg *config.Config,
	logger *zap.Logger,
) services.OrganizerServiceInterface {
	return services.NewOrganizerService(repo, roleService, tx, accountConfig(cfg, cfg.DefaultOrganizerRoleID), logger)
}

func provideUserService(
	repo repositories.AccountRepository[db_models.User],
	roleService services.RoleServiceInterface,
	tx repositories.TransactionManager,
	cfg *config.Config,
	logger *zap.Logger,
) services.UserServiceInterface {
	return services.NewUserService(repo, roleService, tx, accountConfig(cfg, cfg.DefaultUserRoleID), logger)
}
