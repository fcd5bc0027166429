// internal/app/system/overview/session.go
package overview

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/metrics"
	"go.uber.org/zap"
)

// State is what the renderer consumes: the loading flag and, once a load
// succeeded, the aggregate. Stats is nil while loading and after a failure.
type State struct {
	Loading bool
	Stats   *Stats
}

// Session is one dashboard view's lifetime: it starts in the loading state,
// runs a single load, and is closed when the view goes away. A load that
// finishes after Close leaves the session untouched.
type Session struct {
	ID string

	src dataservice.Source
	loc *time.Location
	now func() time.Time
	log *zap.Logger

	mu      sync.Mutex
	gen     uint64
	loading bool
	stats   *Stats
}

// Option customizes a Session.
type Option func(*Session)

// WithClock replaces time.Now as the reference for "upcoming".
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLocation sets the zone for date-only values.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) { s.loc = loc }
}

// NewSession returns a session in the loading state.
func NewSession(src dataservice.Source, logger *zap.Logger, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		src:     src,
		loc:     time.UTC,
		now:     time.Now,
		log:     logger,
		loading: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load fetches the snapshot and aggregates it once. Failures are logged and
// leave Stats unset. The loading flag is cleared exactly once, whatever the
// outcome, unless the session was closed in the meantime.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	var stats *Stats
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			metrics.StaleDiscarded()
			s.log.Debug("dropping dashboard load for closed session", zap.String("load_id", s.ID))
			return
		}
		if stats != nil {
			s.stats = stats
		}
		s.loading = false
	}()

	snap, err := dataservice.Load(ctx, s.src)
	if err != nil {
		s.log.Error("dashboard load failed", zap.String("load_id", s.ID), zap.Error(err))
		return err
	}

	agg := Aggregate(snap, s.now(), s.loc)
	stats = &agg
	s.log.Debug("dashboard loaded",
		zap.String("load_id", s.ID),
		zap.Int("kurse", agg.Kurse),
		zap.Int("anmeldungen", agg.Anmeldungen))
	return nil
}

// Close ends the session. Results of loads still in flight are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	s.gen++
	s.mu.Unlock()
}

// State returns the current loading flag and stats.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Loading: s.loading, Stats: s.stats}
}
