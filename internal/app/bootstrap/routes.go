// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	dashboardfeature "github.com/mnogodumalon/kurs70/internal/app/features/dashboard"
	errorsfeature "github.com/mnogodumalon/kurs70/internal/app/features/errors"
	healthfeature "github.com/mnogodumalon/kurs70/internal/app/features/health"
	homefeature "github.com/mnogodumalon/kurs70/internal/app/features/home"
	"github.com/mnogodumalon/kurs70/internal/app/system/ratelimit"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the data source, schema setup, and
// the Startup hook have completed. It boots the template engine and mounts
// the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps, logger), nil
}

// newRouter mounts every route. It does not touch the template engine, so
// tests can exercise routing without booting templates.
func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Pinger, deps.SourceName, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Prometheus exposition
	r.Handle("/metrics", promhttp.Handler())

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	dashboardHandler := dashboardfeature.NewHandler(deps.Source, deps.Location, logger)
	var loadLimiter *ratelimit.Limiter
	if appCfg.LoadRateLimit > 0 {
		loadLimiter = ratelimit.New(appCfg.LoadRateLimit, time.Minute)
	}
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, ratelimit.Middleware(loadLimiter, logger)))

	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	return r
}
