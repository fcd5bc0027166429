// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup when the dashboard reads from the MongoDB
mirror. Each ensure* function is idempotent. Errors are aggregated so every
problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureKurse(ctx, db, logger); err != nil {
		problems = append(problems, "kurse: "+err.Error())
	}
	if err := ensureAnmeldungen(ctx, db, logger); err != nil {
		problems = append(problems, "anmeldungen: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type existingIndex struct {
	Name string `bson:"name"`
	Key  bson.D `bson:"key"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

// ensureIndexSet creates each desired index unless one with the same key
// pattern already exists. An existing index under another name is dropped
// and recreated so names stay predictable.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	existing := map[string]existingIndex{}
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			logger.Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		existing[keySig(idx.Key)] = idx
	}
	cur.Close(ctx)

	var errs []string
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()

		if ex, ok := existing[sig]; ok {
			if name == "" || ex.Name == name {
				logger.Debug("reusing existing index",
					zap.String("collection", coll.Name()),
					zap.String("name", ex.Name),
					zap.String("keys", sig))
				continue
			}
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): rename drop failed: %v", coll.Name(), name, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			continue
		}
		logger.Info("index created",
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureKurse(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("kurse"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "startdatum", Value: 1}},
			Options: options.Index().SetName("idx_kurse_startdatum"),
		},
		{
			Keys:    bson.D{{Key: "dozent_id", Value: 1}},
			Options: options.Index().SetName("idx_kurse_dozent"),
		},
	}, logger)
}

func ensureAnmeldungen(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("anmeldungen"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "anmeldedatum", Value: -1}},
			Options: options.Index().SetName("idx_anmeldungen_datum_desc"),
		},
		{
			Keys:    bson.D{{Key: "kurs_id", Value: 1}},
			Options: options.Index().SetName("idx_anmeldungen_kurs"),
		},
		{
			Keys:    bson.D{{Key: "teilnehmer_id", Value: 1}},
			Options: options.Index().SetName("idx_anmeldungen_teilnehmer"),
		},
	}, logger)
}
