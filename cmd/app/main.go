package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventmanager/cmd/fx/account_fx"
	"eventmanager/cmd/fx/auth_fx"
	"eventmanager/cmd/fx/config_fx"
	"eventmanager/cmd/fx/controllers_fx"
	"eventmanager/cmd/fx/db_fx"
	"eventmanager/cmd/fx/event_fx"
	"eventmanager/cmd/fx/http_fx"
	"eventmanager/cmd/fx/mail_fx"
	"eventmanager/cmd/fx/role_fx"
	"eventmanager/internal/infra"
	"eventmanager/internal/services"
)

const commandTimeout = 2 * time.Minute

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "eventmanager",
		Short:         "Event manager API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.PersistentFlags().StringVar(&config_fx.EnvFile, "env-file", config_fx.EnvFile, "dotenv file loaded before the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOnce(cmd.Context(), fx.Invoke(migrate))
			},
		},
		newSeedCommand(),
	)
	return root
}

func newSeedCommand() *cobra.Command {
	var req services.SeedRequest
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default roles, permissions and first admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.Context(),
				role_fx.Module,
				account_fx.Module,
				fx.Provide(services.NewSeeder),
				fx.Invoke(func(lc fx.Lifecycle, seeder *services.Seeder, log *zap.Logger) {
					lc.Append(fx.Hook{OnStart: func(ctx context.Context) error {
						return seed(ctx, seeder, req, log)
					}})
				}),
			)
		},
	}
	cmd.Flags().StringVar(&req.AdminUsername, "admin-username", "", "username of the first admin; no admin is created when empty")
	cmd.Flags().StringVar(&req.AdminEmail, "admin-email", "", "email of the first admin")
	cmd.Flags().StringVar(&req.AdminPassword, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password of the first admin (defaults to $SEED_ADMIN_PASSWORD)")
	cmd.MarkFlagsRequiredTogether("admin-username", "admin-email")
	return cmd
}

func fxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}

func runServe() error {
	app := fx.New(
		fx.WithLogger(fxLogger),
		config_fx.Module,
		db_fx.Module,
		http_fx.Module,
		role_fx.Module,
		account_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		event_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
	app.Run()
	return app.Err()
}

// runOnce starts an app around the given options, which do their work in
// invoke or OnStart, and stops it right away.
func runOnce(ctx context.Context, opts ...fx.Option) error {
	app := fx.New(
		fx.WithLogger(fxLogger),
		config_fx.Module,
		db_fx.Module,
		fx.Options(opts...),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	return app.Stop(stopCtx)
}

func migrate(db *gorm.DB, log *zap.Logger) error {
	if err := infra.AutoMigrate(db); err != nil {
		return err
	}
	log.Info("database schema is up to date")
	return nil
}

func seed(ctx context.Context, seeder *services.Seeder, req services.SeedRequest, log *zap.Logger) error {
	result, err := seeder.Run(ctx, req)
	if err != nil {
		return err
	}
	log.Info("seed complete",
		zap.String("DEFAULT_ADMIN_ROLE_ID", result.AdminRoleID),
		zap.String("DEFAULT_ORGANIZER_ROLE_ID", result.OrganizerRoleID),
		zap.String("DEFAULT_USER_ROLE_ID", result.UserRoleID),
		zap.String("admin_id", result.AdminID),
	)
	return nil
}
