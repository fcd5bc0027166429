// internal/app/system/dataservice/dataservice.go

// Package dataservice loads the five dashboard collections from a record source.
package dataservice

import (
	"context"
	"fmt"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/metrics"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"golang.org/x/sync/errgroup"
)

// Collection names, used in errors, logs and metrics.
const (
	CollKurse       = "kurse"
	CollDozenten    = "dozenten"
	CollTeilnehmer  = "teilnehmer"
	CollRaeume      = "raeume"
	CollAnmeldungen = "anmeldungen"
)

// Source is the read-only data service. Each call returns a full collection.
type Source interface {
	ListKurse(ctx context.Context) ([]models.Kurs, error)
	ListDozenten(ctx context.Context) ([]models.Dozent, error)
	ListTeilnehmer(ctx context.Context) ([]models.Teilnehmer, error)
	ListRaeume(ctx context.Context) ([]models.Raum, error)
	ListAnmeldungen(ctx context.Context) ([]models.Anmeldung, error)
}

// Pinger is implemented by sources that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Snapshot is one complete, consistent fetch of all collections.
type Snapshot struct {
	Kurse       []models.Kurs
	Dozenten    []models.Dozent
	Teilnehmer  []models.Teilnehmer
	Raeume      []models.Raum
	Anmeldungen []models.Anmeldung
}

// Load fetches all five collections concurrently. Either every fetch
// succeeds or Load returns the first error and an empty Snapshot; a partial
// snapshot is never returned. The first failure cancels the other fetches.
func Load(ctx context.Context, src Source) (Snapshot, error) {
	start := time.Now()

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := src.ListKurse(gctx)
		if err != nil {
			return fetchErr(CollKurse, err)
		}
		snap.Kurse = v
		return nil
	})
	g.Go(func() error {
		v, err := src.ListDozenten(gctx)
		if err != nil {
			return fetchErr(CollDozenten, err)
		}
		snap.Dozenten = v
		return nil
	})
	g.Go(func() error {
		v, err := src.ListTeilnehmer(gctx)
		if err != nil {
			return fetchErr(CollTeilnehmer, err)
		}
		snap.Teilnehmer = v
		return nil
	})
	g.Go(func() error {
		v, err := src.ListRaeume(gctx)
		if err != nil {
			return fetchErr(CollRaeume, err)
		}
		snap.Raeume = v
		return nil
	})
	g.Go(func() error {
		v, err := src.ListAnmeldungen(gctx)
		if err != nil {
			return fetchErr(CollAnmeldungen, err)
		}
		snap.Anmeldungen = v
		return nil
	})

	if err := g.Wait(); err != nil {
		metrics.ObserveLoad(metrics.ResultError, time.Since(start))
		return Snapshot{}, err
	}
	metrics.ObserveLoad(metrics.ResultOK, time.Since(start))
	return snap, nil
}

func fetchErr(collection string, err error) error {
	metrics.FetchFailed(collection)
	return fmt.Errorf("load %s: %w", collection, err)
}
