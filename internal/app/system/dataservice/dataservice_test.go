package dataservice_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"github.com/mnogodumalon/kurs70/internal/testutil"
)

func fullSource() *testutil.FakeSource {
	d := testutil.NewID()
	tn := testutil.NewID()
	k := testutil.NewID()
	return &testutil.FakeSource{
		Kurse:       []models.Kurs{testutil.Kurs(k, "Yoga", "2027-01-10", nil, d)},
		Dozenten:    []models.Dozent{testutil.Dozent(d, "Anna Berg")},
		Teilnehmer:  []models.Teilnehmer{testutil.Teilnehmer(tn, "Max Muster")},
		Raeume:      []models.Raum{testutil.Raum(testutil.NewID()), testutil.Raum(testutil.NewID())},
		Anmeldungen: []models.Anmeldung{testutil.Anmeldung(testutil.NewID(), tn, k, "2026-09-01", true)},
	}
}

func TestLoad_AllCollections(t *testing.T) {
	src := fullSource()

	snap, err := dataservice.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(snap.Kurse) != 1 || len(snap.Dozenten) != 1 || len(snap.Teilnehmer) != 1 ||
		len(snap.Raeume) != 2 || len(snap.Anmeldungen) != 1 {
		t.Errorf("unexpected snapshot sizes: %+v", snap)
	}
	if src.Calls() != 5 {
		t.Errorf("expected 5 fetches, got %d", src.Calls())
	}
}

func TestLoad_AnyFailureBlanksSnapshot(t *testing.T) {
	boom := errors.New("boom")

	cases := map[string]func(*testutil.FakeSource){
		dataservice.CollKurse:       func(s *testutil.FakeSource) { s.KurseErr = boom },
		dataservice.CollDozenten:    func(s *testutil.FakeSource) { s.DozentenErr = boom },
		dataservice.CollTeilnehmer:  func(s *testutil.FakeSource) { s.TeilnehmerErr = boom },
		dataservice.CollRaeume:      func(s *testutil.FakeSource) { s.RaeumeErr = boom },
		dataservice.CollAnmeldungen: func(s *testutil.FakeSource) { s.AnmeldungenErr = boom },
	}

	for coll, breakIt := range cases {
		t.Run(coll, func(t *testing.T) {
			src := fullSource()
			breakIt(src)

			snap, err := dataservice.Load(context.Background(), src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, boom) {
				t.Errorf("error should wrap cause, got %v", err)
			}
			if !strings.Contains(err.Error(), "load "+coll) {
				t.Errorf("error should name %s, got %v", coll, err)
			}
			if snap.Kurse != nil || snap.Dozenten != nil || snap.Teilnehmer != nil ||
				snap.Raeume != nil || snap.Anmeldungen != nil {
				t.Errorf("expected empty snapshot on failure, got %+v", snap)
			}
		})
	}
}

func TestLoad_ContextCanceled(t *testing.T) {
	src := fullSource()
	src.Block = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := dataservice.Load(ctx, src); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad_FetchesRunConcurrently(t *testing.T) {
	src := fullSource()
	src.Block = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := dataservice.Load(context.Background(), src)
		done <- err
	}()

	// Every fetch holds on Block, so all five can only have started if
	// they run at the same time.
	deadline := time.Now().Add(2 * time.Second)
	for src.Calls() < 5 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	started := src.Calls()
	close(src.Block)

	if started != 5 {
		t.Fatalf("expected 5 fetches in flight, got %d", started)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Load did not return after fetches were released")
	}
}
