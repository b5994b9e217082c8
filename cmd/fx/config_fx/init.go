package config_fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"eventmanager/internal/api/controllers"
	"eventmanager/internal/config"
	"eventmanager/pkg/utils"
)

// EnvFile is read before the process environment; a missing file is fine.
var EnvFile = ".env"

var Module = fx.Options(
	fx.Provide(
		provideConfig,
		provideLogger,
		providePaging,
		provideTokenIssuer,
	),
	fx.Invoke(registerValidators),
)

func provideConfig() (*config.Config, error) {
	return config.Load(EnvFile)
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	installGlobal(lc, logger)
	return logger, nil
}

// installGlobal makes logger the zap.L() used by utils.HandleServiceError
// and restores the previous one on stop.
func installGlobal(lc fx.Lifecycle, logger *zap.Logger) {
	undo := zap.ReplaceGlobals(logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			undo()
			return nil
		},
	})
}

// NewLogger builds the zap logger for cfg.AppEnv and switches gin to
// release mode in production.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
		return zap.NewProduction(zap.Fields(zap.String("app", cfg.AppName)))
	}
	return zap.NewDevelopment(zap.Fields(zap.String("app", cfg.AppName)))
}

func providePaging(cfg *config.Config) controllers.Paging {
	return controllers.Paging{ItemsPerPage: cfg.ItemsPerPage}
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTokenDuration)
}

func registerValidators(cfg *config.Config) error {
	return utils.RegisterValidators(cfg.PasswordMinLength)
}
