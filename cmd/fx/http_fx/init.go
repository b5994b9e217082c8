package http_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"eventmanager/internal/config"
	"eventmanager/pkg/middleware"
)

var Module = fx.Provide(
	provideRegistry,
	provideHTTPMetrics,
	provideRateLimiter,
	provideCORS,
)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideHTTPMetrics(reg *prometheus.Registry) *middleware.HTTPMetrics {
	return middleware.NewHTTPMetrics(reg)
}

func provideRateLimiter(cfg *config.Config) *middleware.IPRateLimiter {
	return middleware.NewIPRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
}

func provideCORS(cfg *config.Config) middleware.CORSConfig {
	return middleware.CORSConfig{AllowOrigins: cfg.CORSAllowOrigins, MaxAge: cfg.CORSMaxAge}
}
