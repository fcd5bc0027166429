package recordstore_test

import (
	"testing"
	"time"

	recordstore "github.com/mnogodumalon/kurs70/internal/app/store/records"
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
	"github.com/mnogodumalon/kurs70/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_ListKurse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	doz := fixtures.CreateDozent(ctx, "Anna Berg")
	withDozent := fixtures.CreateKurs(ctx, "Yoga", "2027-01-10", testutil.Price(99.5), doz)
	bare := fixtures.CreateKurs(ctx, "Pilates", "", nil, primitive.NilObjectID)

	kurse, err := store.ListKurse(ctx)
	if err != nil {
		t.Fatalf("ListKurse failed: %v", err)
	}
	if len(kurse) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(kurse))
	}

	byID := map[string]int{}
	for i, k := range kurse {
		byID[k.RecordID] = i
	}

	yoga := kurse[byID[withDozent.Hex()]]
	if yoga.Fields.Titel == nil || *yoga.Fields.Titel != "Yoga" || yoga.Fields.Startdatum != "2027-01-10" {
		t.Errorf("unexpected fields: %+v", yoga.Fields)
	}
	if yoga.Fields.Preis == nil || *yoga.Fields.Preis != 99.5 {
		t.Errorf("unexpected price: %v", yoga.Fields.Preis)
	}
	if yoga.Fields.Dozent != doz.Hex() {
		t.Errorf("Dozent: got %q, want %q", yoga.Fields.Dozent, doz.Hex())
	}

	pilates := kurse[byID[bare.Hex()]]
	if pilates.Fields.Dozent != "" {
		t.Errorf("expected no dozent ref, got %q", pilates.Fields.Dozent)
	}
	if pilates.Fields.Preis != nil {
		t.Error("expected nil price")
	}
}

func TestStore_ListAnmeldungen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tn := fixtures.CreateTeilnehmer(ctx, "Max Muster")
	kurs := fixtures.CreateKurs(ctx, "Yoga", "", nil, primitive.NilObjectID)
	fixtures.CreateAnmeldung(ctx, tn, kurs, "2026-09-01", true)

	regs, err := store.ListAnmeldungen(ctx)
	if err != nil {
		t.Fatalf("ListAnmeldungen failed: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(regs))
	}
	f := regs[0].Fields
	if f.Teilnehmer != tn.Hex() || f.Kurs != kurs.Hex() {
		t.Errorf("unexpected refs: %+v", f)
	}
	if !f.Bezahlt || f.Anmeldedatum != "2026-09-01" {
		t.Errorf("unexpected fields: %+v", f)
	}
}

func TestStore_ListRaeume(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := fixtures.CreateRaum(ctx, "Saal 1")

	rooms, err := store.ListRaeume(ctx)
	if err != nil {
		t.Fatalf("ListRaeume failed: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0].RecordID != id.Hex() {
		t.Errorf("RecordID: got %q, want %q", rooms[0].RecordID, id.Hex())
	}
	if rooms[0].Fields["raumname"] != "Saal 1" {
		t.Errorf("unexpected fields: %v", rooms[0].Fields)
	}
	if _, ok := rooms[0].Fields["_id"]; ok {
		t.Error("_id should not be part of the field bundle")
	}
}

func TestStore_EmptyCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	snap, err := dataservice.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Kurse)+len(snap.Dozenten)+len(snap.Teilnehmer)+len(snap.Raeume)+len(snap.Anmeldungen) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestStore_DashboardEndToEnd(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	doz := fixtures.CreateDozent(ctx, "Anna Berg")
	tn := fixtures.CreateTeilnehmer(ctx, "Max Muster")
	fixtures.CreateRaum(ctx, "Saal 1")
	past := fixtures.CreateKurs(ctx, "Alt", "2020-01-01", nil, doz)
	future := fixtures.CreateKurs(ctx, "Neu", "2099-01-01", testutil.Price(50), doz)
	fixtures.CreateAnmeldung(ctx, tn, past, "2020-01-02", true)
	fixtures.CreateAnmeldung(ctx, tn, future, "2026-01-02", false)

	snap, err := dataservice.Load(ctx, store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	stats := overview.Aggregate(snap, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), time.UTC)

	if stats.Kurse != 2 || stats.Dozenten != 1 || stats.Teilnehmer != 1 || stats.Raeume != 1 || stats.Anmeldungen != 2 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.Bezahlt != 1 || stats.Unbezahlt != 1 {
		t.Errorf("payment split: %d/%d", stats.Bezahlt, stats.Unbezahlt)
	}
	if len(stats.UpcomingKurse) != 1 || stats.UpcomingKurse[0].RecordID != future.Hex() {
		t.Fatalf("unexpected upcoming: %+v", stats.UpcomingKurse)
	}
	if name, ok := stats.Lookups.DozentName(stats.UpcomingKurse[0].Fields.Dozent); !ok || name != "Anna Berg" {
		t.Errorf("DozentName: got %q, %v", name, ok)
	}
	recent := stats.RecentAnmeldungen
	if len(recent) != 2 || recent[0].Fields.Anmeldedatum != "2026-01-02" {
		t.Errorf("unexpected recent order: %+v", recent)
	}
	if title, ok := stats.Lookups.KursTitel(recent[0].Fields.Kurs); !ok || title != "Neu" {
		t.Errorf("KursTitel: got %q, %v", title, ok)
	}
}

func TestStore_Ping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recordstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
