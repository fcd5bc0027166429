package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test records in MongoDB.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc bson.M) primitive.ObjectID {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc["_id"] = id
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert into %s: %v", coll, err)
	}
	return id
}

// CreateDozent inserts an instructor.
func (f *Fixtures) CreateDozent(ctx context.Context, name string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "dozenten", bson.M{"name": name})
}

// CreateTeilnehmer inserts a participant.
func (f *Fixtures) CreateTeilnehmer(ctx context.Context, name string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "teilnehmer", bson.M{"name": name})
}

// CreateRaum inserts a room.
func (f *Fixtures) CreateRaum(ctx context.Context, name string) primitive.ObjectID {
	f.t.Helper()
	return f.insert(ctx, "raeume", bson.M{"raumname": name})
}

// CreateKurs inserts a course. A zero dozent leaves the relation unset;
// a nil price leaves the price unset.
func (f *Fixtures) CreateKurs(ctx context.Context, titel, startdatum string, preis *float64, dozent primitive.ObjectID) primitive.ObjectID {
	f.t.Helper()

	doc := bson.M{"titel": titel}
	if startdatum != "" {
		doc["startdatum"] = startdatum
	}
	if preis != nil {
		doc["preis"] = *preis
	}
	if !dozent.IsZero() {
		doc["dozent_id"] = dozent
	}
	return f.insert(ctx, "kurse", doc)
}

// CreateAnmeldung inserts a registration.
func (f *Fixtures) CreateAnmeldung(ctx context.Context, teilnehmer, kurs primitive.ObjectID, anmeldedatum string, bezahlt bool) primitive.ObjectID {
	f.t.Helper()

	doc := bson.M{
		"teilnehmer_id": teilnehmer,
		"kurs_id":       kurs,
		"bezahlt":       bezahlt,
	}
	if anmeldedatum != "" {
		doc["anmeldedatum"] = anmeldedatum
	}
	return f.insert(ctx, "anmeldungen", doc)
}

// Price returns a pointer to v for optional price fields.
func Price(v float64) *float64 {
	return &v
}
