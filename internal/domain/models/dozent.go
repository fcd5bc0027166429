// internal/domain/models/dozent.go
package models

// Dozent is an instructor record.
type Dozent struct {
	RecordID string       `json:"record_id"`
	Fields   DozentFields `json:"fields"`
}

// DozentFields.Name is nil when the service omits it; an empty name is kept.
type DozentFields struct {
	Name *string `json:"name,omitempty"`
}
