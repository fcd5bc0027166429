package overview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/metrics"
	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"github.com/mnogodumalon/kurs70/internal/testutil"
	"go.uber.org/zap"
)

func fixedClock() time.Time { return refNow }

func TestSession_StartsLoading(t *testing.T) {
	s := overview.NewSession(&testutil.FakeSource{}, zap.NewNop())

	st := s.State()
	if !st.Loading {
		t.Error("new session should be loading")
	}
	if st.Stats != nil {
		t.Error("new session should have no stats")
	}
	if s.ID == "" {
		t.Error("session should have an id")
	}
}

func TestSession_LoadSuccess(t *testing.T) {
	src := &testutil.FakeSource{
		Kurse: []models.Kurs{
			testutil.Kurs("past", "Alt", "2026-01-01", nil, ""),
			testutil.Kurs("future", "Neu", "2027-01-01", nil, ""),
		},
	}
	s := overview.NewSession(src, zap.NewNop(), overview.WithClock(fixedClock), overview.WithLocation(time.UTC))

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	st := s.State()
	if st.Loading {
		t.Error("loading should be cleared")
	}
	if st.Stats == nil {
		t.Fatal("expected stats")
	}
	if st.Stats.Kurse != 2 {
		t.Errorf("Kurse: got %d, want 2", st.Stats.Kurse)
	}
	if len(st.Stats.UpcomingKurse) != 1 || st.Stats.UpcomingKurse[0].RecordID != "future" {
		t.Errorf("unexpected upcoming: %+v", st.Stats.UpcomingKurse)
	}
}

func TestSession_LoadFailureClearsLoading(t *testing.T) {
	boom := errors.New("service down")
	src := &testutil.FakeSource{
		Kurse:     []models.Kurs{testutil.Kurs("k", "Yoga", "2027-01-01", nil, "")},
		RaeumeErr: boom,
	}
	s := overview.NewSession(src, zap.NewNop())

	err := s.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	st := s.State()
	if st.Loading {
		t.Error("loading should be cleared after failure")
	}
	if st.Stats != nil {
		t.Error("stats should stay unset after failure")
	}
}

func TestSession_CloseDiscardsLateResult(t *testing.T) {
	src := &testutil.FakeSource{
		Kurse: []models.Kurs{testutil.Kurs("k", "Yoga", "2027-01-01", nil, "")},
		Block: make(chan struct{}),
	}
	s := overview.NewSession(src, zap.NewNop())
	staleBefore := metrics.Stale()

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()

	// Wait until all five fetches are in flight, then tear down.
	deadline := time.Now().Add(2 * time.Second)
	for src.Calls() < 5 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Close()
	close(src.Block)

	if err := <-done; err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	st := s.State()
	if st.Stats != nil {
		t.Error("late result must not populate a closed session")
	}
	if !st.Loading {
		t.Error("closed session state must not change after teardown")
	}
	if metrics.Stale() != staleBefore+1 {
		t.Errorf("expected one stale result recorded")
	}
}
