// internal/domain/models/kurs.go
package models

// Kurs is a course offering as delivered by the data service.
type Kurs struct {
	RecordID string     `json:"record_id"`
	Fields   KursFields `json:"fields"`
}

// KursFields holds the course attributes the dashboard reads.
// Titel is nil when the service omits it. Startdatum is an ISO-8601 date
// or date-time string; empty means absent.
type KursFields struct {
	Titel      *string  `json:"titel,omitempty"`
	Startdatum string   `json:"startdatum,omitempty"`
	Preis      *float64 `json:"preis,omitempty"`
	Dozent     string   `json:"dozent,omitempty"` // reference to a Dozent record
}
