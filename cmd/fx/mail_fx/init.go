package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"eventmanager/internal/config"
	"eventmanager/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, logger *zap.Logger) (services.IMailService, error) {
	return services.NewMailService(MailConfig(cfg), logger)
}

func MailConfig(cfg *config.Config) services.MailConfig {
	return services.MailConfig{
		Provider:   cfg.Mail.Provider,
		From:       cfg.Mail.SMTPFrom,
		FromName:   cfg.Mail.SMTPFromName,
		AppName:    cfg.AppName,
		AppBaseURL: cfg.ServerURL,
		SMTP: services.SMTPConfig{
			Host:       cfg.Mail.SMTPHost,
			Port:       cfg.Mail.SMTPPort,
			Username:   cfg.Mail.SMTPUsername,
			Password:   cfg.Mail.SMTPPassword,
			UseSSL:     cfg.Mail.SMTPUseSSL,
			RequireTLS: cfg.Mail.SMTPRequireTLS,
		},
		SendGridAPIKey: cfg.Mail.SendGridAPIKey,
	}
}
