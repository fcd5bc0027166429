// internal/app/system/overview/aggregate.go

// Package overview derives the dashboard statistics from one data snapshot.
package overview

import (
	"sort"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/locale"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
)

// List sizes shown on the dashboard.
const (
	UpcomingLimit = 4
	RecentLimit   = 5
)

// Stats is the aggregate shown by the dashboard.
type Stats struct {
	Kurse       int
	Dozenten    int
	Teilnehmer  int
	Raeume      int
	Anmeldungen int

	Bezahlt   int
	Unbezahlt int

	UpcomingKurse     []models.Kurs
	RecentAnmeldungen []models.Anmeldung

	Lookups Lookups
}

// Aggregate computes Stats from snap. now is the single reference instant for
// "upcoming"; date-only start dates are read as midnight in loc.
// snap is not modified.
func Aggregate(snap dataservice.Snapshot, now time.Time, loc *time.Location) Stats {
	s := Stats{
		Kurse:       len(snap.Kurse),
		Dozenten:    len(snap.Dozenten),
		Teilnehmer:  len(snap.Teilnehmer),
		Raeume:      len(snap.Raeume),
		Anmeldungen: len(snap.Anmeldungen),
		Lookups:     BuildLookups(snap),
	}

	for _, a := range snap.Anmeldungen {
		if a.Fields.Bezahlt {
			s.Bezahlt++
		} else {
			s.Unbezahlt++
		}
	}

	s.UpcomingKurse = Upcoming(snap.Kurse, now, loc, UpcomingLimit)
	s.RecentAnmeldungen = Recent(snap.Anmeldungen, RecentLimit)
	return s
}

// Upcoming returns at most limit courses starting strictly after now,
// ordered by start date ascending.
func Upcoming(kurse []models.Kurs, now time.Time, loc *time.Location, limit int) []models.Kurs {
	out := make([]models.Kurs, 0, len(kurse))
	for _, k := range kurse {
		if k.Fields.Startdatum == "" {
			continue
		}
		start, err := locale.ParseDate(k.Fields.Startdatum, loc)
		if err != nil || !start.After(now) {
			continue
		}
		out = append(out, k)
	}

	// ISO-8601 strings of the same shape sort chronologically.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fields.Startdatum < out[j].Fields.Startdatum
	})
	return head(out, limit)
}

// Recent returns at most limit registrations ordered by registration date
// descending. Registrations without a date sort last.
func Recent(anmeldungen []models.Anmeldung, limit int) []models.Anmeldung {
	out := make([]models.Anmeldung, len(anmeldungen))
	copy(out, anmeldungen)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fields.Anmeldedatum > out[j].Fields.Anmeldedatum
	})
	return head(out, limit)
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
