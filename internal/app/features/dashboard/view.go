// internal/app/features/dashboard/view.go
package dashboard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mnogodumalon/kurs70/internal/app/system/locale"
	"github.com/mnogodumalon/kurs70/internal/app/system/overview"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
)

// Panel states. A panel shows exactly one of them.
const (
	stateLoading = "loading"
	stateEmpty   = "empty"
	stateRows    = "rows"
)

const (
	loadingMark = "…"
	noDozent    = "Kein Dozent"
	badgePaid   = "Bezahlt"
	badgeOpen   = "Offen"
)

type kpiTile struct {
	Key   string
	Label string
	Value string
}

type courseRow struct {
	ID     string
	Title  string
	Dozent string
	Start  string
	Price  string // empty when the course has no price
}

type registrationRow struct {
	ID         string
	Teilnehmer string
	Kurs       string
	Paid       bool
	Badge      string
	Date       string // empty when absent or unparseable
}

type panel struct {
	Title   string
	State   string
	Message string
}

type pageData struct {
	Title      string
	ContentURL string
	Loading    bool

	HeroKicker string
	HeroTitle  string
	Subtitle   string
	Paid       string
	Unpaid     string

	Tiles []kpiTile

	Upcoming      panel
	Courses       []courseRow
	Recent        panel
	Registrations []registrationRow
}

// BuildView turns a session state into the page view model. Dates are
// formatted in loc.
func BuildView(st overview.State, loc *time.Location) pageData {
	var s overview.Stats
	if st.Stats != nil {
		s = *st.Stats
	}

	data := pageData{
		Title:      "Kursverwaltung",
		ContentURL: "/dashboard/content",
		Loading:    st.Loading,
		HeroKicker: "Kursverwaltungssystem",
		HeroTitle:  "Willkommen zurück",
		Paid:       locale.Placeholder,
		Unpaid:     locale.Placeholder,
	}

	if st.Loading {
		data.Subtitle = "Daten werden geladen…"
	} else {
		data.Subtitle = fmt.Sprintf("%d Kurse · %d Anmeldungen · %d Teilnehmer", s.Kurse, s.Anmeldungen, s.Teilnehmer)
		if st.Stats != nil {
			data.Paid = strconv.Itoa(s.Bezahlt)
			data.Unpaid = strconv.Itoa(s.Unbezahlt)
		}
	}

	data.Tiles = []kpiTile{
		tile("kurse", "Kurse", s.Kurse, st.Loading),
		tile("dozenten", "Dozenten", s.Dozenten, st.Loading),
		tile("teilnehmer", "Teilnehmer", s.Teilnehmer, st.Loading),
		tile("raeume", "Räume", s.Raeume, st.Loading),
		tile("anmeldungen", "Anmeldungen", s.Anmeldungen, st.Loading),
	}

	data.Upcoming = newPanel("Bevorstehende Kurse", "Keine bevorstehenden Kurse", st.Loading, len(s.UpcomingKurse))
	if data.Upcoming.State == stateRows {
		for _, k := range s.UpcomingKurse {
			data.Courses = append(data.Courses, buildCourseRow(k, s.Lookups, loc))
		}
	}

	data.Recent = newPanel("Letzte Anmeldungen", "Keine Anmeldungen vorhanden", st.Loading, len(s.RecentAnmeldungen))
	if data.Recent.State == stateRows {
		for _, a := range s.RecentAnmeldungen {
			row := registrationRow{
				ID:         a.RecordID,
				Teilnehmer: display(s.Lookups.TeilnehmerName(a.Fields.Teilnehmer)),
				Kurs:       display(s.Lookups.KursTitel(a.Fields.Kurs)),
				Paid:       a.Fields.Bezahlt,
				Badge:      badgeOpen,
			}
			if a.Fields.Bezahlt {
				row.Badge = badgePaid
			}
			if a.Fields.Anmeldedatum != "" {
				if d, ok := locale.ShortDate(a.Fields.Anmeldedatum, loc); ok {
					row.Date = d
				}
			}
			data.Registrations = append(data.Registrations, row)
		}
	}

	return data
}

func tile(key, label string, n int, loading bool) kpiTile {
	t := kpiTile{Key: key, Label: label, Value: strconv.Itoa(n)}
	if loading {
		t.Value = loadingMark
	}
	return t
}

// newPanel picks the panel state: loading wins over empty, empty over rows.
func newPanel(title, emptyText string, loading bool, n int) panel {
	switch {
	case loading:
		return panel{Title: title, State: stateLoading, Message: "Laden…"}
	case n == 0:
		return panel{Title: title, State: stateEmpty, Message: emptyText}
	default:
		return panel{Title: title, State: stateRows}
	}
}

func buildCourseRow(k models.Kurs, l overview.Lookups, loc *time.Location) courseRow {
	row := courseRow{
		ID:     k.RecordID,
		Title:  locale.Placeholder,
		Dozent: noDozent,
		Start:  locale.Placeholder,
	}
	if k.Fields.Titel != nil {
		row.Title = *k.Fields.Titel
	}
	if name, ok := l.DozentName(k.Fields.Dozent); ok {
		row.Dozent = name
	}
	if k.Fields.Startdatum != "" {
		row.Start, _ = locale.CourseDate(k.Fields.Startdatum, loc)
	}
	if k.Fields.Preis != nil {
		row.Price = locale.Euro(*k.Fields.Preis)
	}
	return row
}

// display returns the resolved name verbatim or the placeholder.
// Templates escape it on output.
func display(name string, ok bool) string {
	if !ok {
		return locale.Placeholder
	}
	return name
}
