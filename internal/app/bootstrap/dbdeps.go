// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the data source and back-end clients for the app.
type DBDeps struct {
	// Source serves the five dashboard collections.
	Source dataservice.Source
	// Pinger reports Source reachability for /health. Nil if Source cannot ping.
	Pinger dataservice.Pinger
	// SourceName is the configured data_source.
	SourceName string

	// Set only when SourceName is "mongo".
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Location is the resolved time_zone.
	Location *time.Location
}
