// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/mnogodumalon/kurs70/internal/app/store/livingapps"
	"github.com/mnogodumalon/kurs70/internal/app/system/locale"
	"github.com/mnogodumalon/kurs70/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the course dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, livingapps_base_url, etc.
//   - Environment variables: KURS_DATA_SOURCE, KURS_LIVINGAPPS_API_KEY, etc.
//   - Command-line flags: --data_source, --livingapps_api_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: SourceLivingApps, Desc: "Record source: 'livingapps' or 'mongo'"},

	// LivingApps REST
	{Name: "livingapps_base_url", Default: livingapps.DefaultBaseURL, Desc: "LivingApps REST base URL"},
	{Name: "livingapps_api_key", Default: "", Desc: "LivingApps API key (sent as X-API-Key)"},
	{Name: "livingapps_app_kurse", Default: "", Desc: "App id of the Kurse collection"},
	{Name: "livingapps_app_dozenten", Default: "", Desc: "App id of the Dozenten collection"},
	{Name: "livingapps_app_teilnehmer", Default: "", Desc: "App id of the Teilnehmer collection"},
	{Name: "livingapps_app_raeume", Default: "", Desc: "App id of the Räume collection"},
	{Name: "livingapps_app_anmeldungen", Default: "", Desc: "App id of the Anmeldungen collection"},

	// MongoDB mirror
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "kursverwaltung", Desc: "MongoDB database name"},

	{Name: "time_zone", Default: locale.DefaultTimeZone, Desc: "IANA time zone for course dates"},
	{Name: "fetch_timeout", Default: "15s", Desc: "Upper bound for one dashboard load (e.g., 15s, 1m)"},
	{Name: "ping_timeout", Default: "2s", Desc: "Upper bound for health check pings"},
	{Name: "load_rate_limit", Default: 60, Desc: "Dashboard loads per client IP and minute (0 disables)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges with precedence
// flags > env (WAFFLE_* for core, KURS_* for app) > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "KURS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataSource: strings.ToLower(strings.TrimSpace(appValues.String("data_source"))),

		LivingAppsBaseURL: appValues.String("livingapps_base_url"),
		LivingAppsAPIKey:  appValues.String("livingapps_api_key"),
		AppKurse:          appValues.String("livingapps_app_kurse"),
		AppDozenten:       appValues.String("livingapps_app_dozenten"),
		AppTeilnehmer:     appValues.String("livingapps_app_teilnehmer"),
		AppRaeume:         appValues.String("livingapps_app_raeume"),
		AppAnmeldungen:    appValues.String("livingapps_app_anmeldungen"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		TimeZone: appValues.String("time_zone"),

		FetchTimeout: appValues.Duration("fetch_timeout", timeouts.DefaultFetch),
		PingTimeout:  appValues.Duration("ping_timeout", timeouts.DefaultPing),

		LoadRateLimit: appValues.Int("load_rate_limit"),
	}

	return coreCfg, appCfg, nil
}

// livingAppsApps collects the configured app ids.
func (c AppConfig) livingAppsApps() livingapps.Apps {
	return livingapps.Apps{
		Kurse:       c.AppKurse,
		Dozenten:    c.AppDozenten,
		Teilnehmer:  c.AppTeilnehmer,
		Raeume:      c.AppRaeume,
		Anmeldungen: c.AppAnmeldungen,
	}
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	switch appCfg.DataSource {
	case SourceLivingApps:
		if strings.TrimSpace(appCfg.LivingAppsBaseURL) == "" {
			return fmt.Errorf("livingapps_base_url is required for data_source %q", SourceLivingApps)
		}
		if missing := appCfg.livingAppsApps().Missing(); len(missing) > 0 {
			return fmt.Errorf("missing LivingApps app ids for: %s", strings.Join(missing, ", "))
		}
	case SourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if strings.TrimSpace(appCfg.MongoDatabase) == "" {
			return fmt.Errorf("mongo_database is required for data_source %q", SourceMongo)
		}
	default:
		return fmt.Errorf("unknown data_source %q (want %q or %q)", appCfg.DataSource, SourceLivingApps, SourceMongo)
	}

	if _, err := locale.LoadLocation(appCfg.TimeZone); err != nil {
		return fmt.Errorf("invalid time_zone %q: %w", appCfg.TimeZone, err)
	}
	if appCfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", appCfg.FetchTimeout)
	}
	if appCfg.PingTimeout <= 0 {
		return fmt.Errorf("ping_timeout must be positive, got %s", appCfg.PingTimeout)
	}
	if appCfg.LoadRateLimit < 0 {
		return fmt.Errorf("load_rate_limit must not be negative, got %d", appCfg.LoadRateLimit)
	}
	return nil
}
