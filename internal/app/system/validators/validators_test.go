package validators_test

import (
	"testing"

	"github.com/mnogodumalon/kurs70/internal/app/system/validators"
	"github.com/mnogodumalon/kurs70/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := make(map[string]bool)
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"kurse", "dozenten", "teilnehmer", "raeume", "anmeldungen"} {
		if !have[want] {
			t.Errorf("expected collection %s to exist", want)
		}
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestAnmeldungenValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection("anmeldungen")

	// Sparse documents are fine.
	if _, err := coll.InsertOne(ctx, bson.M{"bezahlt": false}); err != nil {
		t.Errorf("sparse registration rejected: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{
		"teilnehmer_id": primitive.NewObjectID(),
		"kurs_id":       primitive.NewObjectID(),
		"anmeldedatum":  "2026-09-01",
		"bezahlt":       true,
	}); err != nil {
		t.Errorf("valid registration rejected: %v", err)
	}

	// Wrong types are not.
	if _, err := coll.InsertOne(ctx, bson.M{"bezahlt": "ja"}); err == nil {
		t.Error("expected string bezahlt to be rejected")
	}
	if _, err := coll.InsertOne(ctx, bson.M{"kurs_id": "not-an-oid"}); err == nil {
		t.Error("expected string kurs_id to be rejected")
	}
}

func TestKurseValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	coll := db.Collection("kurse")

	if _, err := coll.InsertOne(ctx, bson.M{"titel": "Yoga", "preis": 120.5}); err != nil {
		t.Errorf("valid course rejected: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"titel": "Yoga", "preis": "teuer"}); err == nil {
		t.Error("expected string preis to be rejected")
	}
}
