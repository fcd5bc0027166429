// internal/app/features/dashboard/stats.go
package dashboard

import (
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
)

// StatsDocument is the JSON form of the dashboard aggregate. Names are
// resolved and dates formatted the same way the page shows them.
type StatsDocument struct {
	Loaded bool   `json:"loaded"`
	LoadID string `json:"load_id,omitempty"`

	Counts    *Counts `json:"counts,omitempty"`
	Bezahlt   int     `json:"bezahlt"`
	Unbezahlt int     `json:"unbezahlt"`

	UpcomingKurse     []CourseEntry       `json:"upcoming_kurse"`
	RecentAnmeldungen []RegistrationEntry `json:"recent_anmeldungen"`
}

type Counts struct {
	Kurse       int `json:"kurse"`
	Dozenten    int `json:"dozenten"`
	Teilnehmer  int `json:"teilnehmer"`
	Raeume      int `json:"raeume"`
	Anmeldungen int `json:"anmeldungen"`
}

type CourseEntry struct {
	ID         string   `json:"record_id"`
	Titel      string   `json:"titel"`
	Dozent     string   `json:"dozent"`
	Startdatum string   `json:"startdatum,omitempty"`
	Datum      string   `json:"datum"`
	Preis      *float64 `json:"preis,omitempty"`
	PreisText  string   `json:"preis_text,omitempty"`
}

type RegistrationEntry struct {
	ID           string `json:"record_id"`
	Teilnehmer   string `json:"teilnehmer"`
	Kurs         string `json:"kurs"`
	Anmeldedatum string `json:"anmeldedatum,omitempty"`
	Datum        string `json:"datum,omitempty"`
	Bezahlt      bool   `json:"bezahlt"`
}

// BuildStatsDocument converts a finished session state. A state without
// stats yields loaded=false and empty lists.
func BuildStatsDocument(st overview.State, loadID string, loc *time.Location) StatsDocument {
	doc := StatsDocument{
		LoadID:            loadID,
		UpcomingKurse:     []CourseEntry{},
		RecentAnmeldungen: []RegistrationEntry{},
	}
	if st.Loading || st.Stats == nil {
		return doc
	}

	s := st.Stats
	doc.Loaded = true
	doc.Counts = &Counts{
		Kurse:       s.Kurse,
		Dozenten:    s.Dozenten,
		Teilnehmer:  s.Teilnehmer,
		Raeume:      s.Raeume,
		Anmeldungen: s.Anmeldungen,
	}
	doc.Bezahlt = s.Bezahlt
	doc.Unbezahlt = s.Unbezahlt

	view := BuildView(st, loc)
	for i, row := range view.Courses {
		k := s.UpcomingKurse[i]
		doc.UpcomingKurse = append(doc.UpcomingKurse, CourseEntry{
			ID:         row.ID,
			Titel:      row.Title,
			Dozent:     row.Dozent,
			Startdatum: k.Fields.Startdatum,
			Datum:      row.Start,
			Preis:      k.Fields.Preis,
			PreisText:  row.Price,
		})
	}
	for i, row := range view.Registrations {
		doc.RecentAnmeldungen = append(doc.RecentAnmeldungen, RegistrationEntry{
			ID:           row.ID,
			Teilnehmer:   row.Teilnehmer,
			Kurs:         row.Kurs,
			Anmeldedatum: s.RecentAnmeldungen[i].Fields.Anmeldedatum,
			Datum:        row.Date,
			Bezahlt:      row.Paid,
		})
	}
	return doc
}
