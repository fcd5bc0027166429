package testutil

import (
	"context"
	"sync"

	"github.com/mnogodumalon/kurs70/internal/domain/models"
)

// FakeSource is an in-memory record source. Setting one of the *Err fields
// makes the matching fetch fail. Block, when non-nil, is waited on by every
// fetch before it returns, so tests can hold a load in flight.
type FakeSource struct {
	Kurse       []models.Kurs
	Dozenten    []models.Dozent
	Teilnehmer  []models.Teilnehmer
	Raeume      []models.Raum
	Anmeldungen []models.Anmeldung

	KurseErr       error
	DozentenErr    error
	TeilnehmerErr  error
	RaeumeErr      error
	AnmeldungenErr error
	PingErr        error

	Block chan struct{}

	mu    sync.Mutex
	calls int
}

// Calls returns how many list operations ran.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeSource) wait(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Block == nil {
		return nil
	}
	select {
	case <-f.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *FakeSource) ListKurse(ctx context.Context) ([]models.Kurs, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.Kurse, f.KurseErr
}

func (f *FakeSource) ListDozenten(ctx context.Context) ([]models.Dozent, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.Dozenten, f.DozentenErr
}

func (f *FakeSource) ListTeilnehmer(ctx context.Context) ([]models.Teilnehmer, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.Teilnehmer, f.TeilnehmerErr
}

func (f *FakeSource) ListRaeume(ctx context.Context) ([]models.Raum, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.Raeume, f.RaeumeErr
}

func (f *FakeSource) ListAnmeldungen(ctx context.Context) ([]models.Anmeldung, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	return f.Anmeldungen, f.AnmeldungenErr
}

func (f *FakeSource) Ping(ctx context.Context) error {
	return f.PingErr
}
