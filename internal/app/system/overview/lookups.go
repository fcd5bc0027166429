// internal/app/system/overview/lookups.go
package overview

import (
	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/refs"
)

// Lookups maps record ids to display names. Build it with BuildLookups from
// a fresh snapshot; it is never updated in place.
type Lookups struct {
	Dozenten   map[string]string
	Teilnehmer map[string]string
	Kurse      map[string]string
}

// BuildLookups projects the id of each instructor, participant and course to
// its name or title. Records without the field are left out, so they do not
// resolve.
func BuildLookups(snap dataservice.Snapshot) Lookups {
	l := Lookups{
		Dozenten:   make(map[string]string, len(snap.Dozenten)),
		Teilnehmer: make(map[string]string, len(snap.Teilnehmer)),
		Kurse:      make(map[string]string, len(snap.Kurse)),
	}
	for _, d := range snap.Dozenten {
		if d.Fields.Name != nil {
			l.Dozenten[d.RecordID] = *d.Fields.Name
		}
	}
	for _, t := range snap.Teilnehmer {
		if t.Fields.Name != nil {
			l.Teilnehmer[t.RecordID] = *t.Fields.Name
		}
	}
	for _, k := range snap.Kurse {
		if k.Fields.Titel != nil {
			l.Kurse[k.RecordID] = *k.Fields.Titel
		}
	}
	return l
}

// DozentName resolves an instructor reference to a name.
func (l Lookups) DozentName(ref string) (string, bool) {
	return lookup(l.Dozenten, ref)
}

// TeilnehmerName resolves a participant reference to a name.
func (l Lookups) TeilnehmerName(ref string) (string, bool) {
	return lookup(l.Teilnehmer, ref)
}

// KursTitel resolves a course reference to its title.
func (l Lookups) KursTitel(ref string) (string, bool) {
	return lookup(l.Kurse, ref)
}

// lookup reports not found for an unresolvable reference and for an id
// without a name. An empty name still resolves.
func lookup(m map[string]string, ref string) (string, bool) {
	id, ok := refs.Parse(ref).ID()
	if !ok {
		return "", false
	}
	name, ok := m[id]
	return name, ok
}
