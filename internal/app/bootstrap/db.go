// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/mnogodumalon/kurs70/internal/app/store/livingapps"
	recordstore "github.com/mnogodumalon/kurs70/internal/app/store/records"
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/indexes"
	"github.com/mnogodumalon/kurs70/internal/app/system/locale"
	"github.com/mnogodumalon/kurs70/internal/app/system/validators"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the configured record source. For "mongo" it connects
// and pings the server; for "livingapps" it only prepares the REST client,
// reachability is reported by /health.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	loc, err := locale.LoadLocation(appCfg.TimeZone)
	if err != nil {
		return DBDeps{}, fmt.Errorf("load time zone: %w", err)
	}
	deps := DBDeps{SourceName: appCfg.DataSource, Location: loc}

	switch appCfg.DataSource {
	case SourceMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, appCfg.PingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
		}

		db := client.Database(appCfg.MongoDatabase)
		store := recordstore.New(db)
		deps.MongoClient = client
		deps.MongoDatabase = db
		deps.Source = store
		deps.Pinger = store
		logger.Info("connected to MongoDB mirror", zap.String("database", appCfg.MongoDatabase))

	case SourceLivingApps:
		var opts []livingapps.Option
		if appCfg.LivingAppsAPIKey != "" {
			opts = append(opts, livingapps.WithAPIKey(appCfg.LivingAppsAPIKey))
		}
		client, err := livingapps.New(appCfg.LivingAppsBaseURL, appCfg.livingAppsApps(), opts...)
		if err != nil {
			return DBDeps{}, err
		}
		deps.Source = client
		deps.Pinger = client
		logger.Info("using LivingApps data service", zap.String("base_url", appCfg.LivingAppsBaseURL))

	default:
		return DBDeps{}, fmt.Errorf("unknown data_source %q", appCfg.DataSource)
	}

	return deps, nil
}

// EnsureSchema sets up collections, validators and indexes on the MongoDB
// mirror. The REST source has no schema to manage.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	if err := validators.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase, logger); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}

var (
	_ dataservice.Source = (*livingapps.Client)(nil)
	_ dataservice.Pinger = (*livingapps.Client)(nil)
	_ dataservice.Source = (*recordstore.Store)(nil)
	_ dataservice.Pinger = (*recordstore.Store)(nil)
)
