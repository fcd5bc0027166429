// internal/domain/models/teilnehmer.go
package models

// Teilnehmer is a participant record.
type Teilnehmer struct {
	RecordID string           `json:"record_id"`
	Fields   TeilnehmerFields `json:"fields"`
}

type TeilnehmerFields struct {
	Name *string `json:"name,omitempty"`
}
