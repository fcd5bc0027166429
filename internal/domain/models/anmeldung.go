// internal/domain/models/anmeldung.go
package models

// Anmeldung links a participant to a course.
type Anmeldung struct {
	RecordID string          `json:"record_id"`
	Fields   AnmeldungFields `json:"fields"`
}

// AnmeldungFields holds the registration attributes.
// Anmeldedatum is an ISO-8601 date string; empty means absent.
type AnmeldungFields struct {
	Teilnehmer   string `json:"teilnehmer,omitempty"` // reference to a Teilnehmer record
	Kurs         string `json:"kurs,omitempty"`       // reference to a Kurs record
	Anmeldedatum string `json:"anmeldedatum,omitempty"`
	Bezahlt      bool   `json:"bezahlt"`
}
