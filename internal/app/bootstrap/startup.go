// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/mnogodumalon/kurs70/internal/app/resources"
	"github.com/mnogodumalon/kurs70/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the data source is
// ready, but before the HTTP handler is built: shared templates are
// registered and the configured timeouts applied.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Ping:  appCfg.PingTimeout,
		Fetch: appCfg.FetchTimeout,
	})
	logger.Info("timeouts configured",
		zap.Duration("ping", timeouts.Ping()),
		zap.Duration("fetch", timeouts.Fetch()))
	return nil
}
