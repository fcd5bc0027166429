// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Data source kinds.
const (
	SourceLivingApps = "livingapps"
	SourceMongo      = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). Framework-level settings such
// as ports, TLS and log level live in WAFFLE's CoreConfig.
type AppConfig struct {
	// DataSource selects where the dashboard reads records from:
	// "livingapps" (REST) or "mongo" (a MongoDB mirror).
	DataSource string

	// LivingApps REST configuration
	LivingAppsBaseURL string
	LivingAppsAPIKey  string
	AppKurse          string // app id of the course collection
	AppDozenten       string
	AppTeilnehmer     string
	AppRaeume         string
	AppAnmeldungen    string

	// MongoDB mirror configuration (only used if DataSource is "mongo")
	MongoURI      string
	MongoDatabase string

	// TimeZone is the IANA zone used for date-only values and display.
	TimeZone string

	// Timeouts for data service calls
	FetchTimeout time.Duration
	PingTimeout  time.Duration

	// LoadRateLimit caps dashboard loads per client IP and minute (0 disables).
	LoadRateLimit int
}
