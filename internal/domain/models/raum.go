// internal/domain/models/raum.go
package models

// Raum is a room record. The dashboard only counts rooms, so the field
// bundle is kept opaque.
type Raum struct {
	RecordID string         `json:"record_id"`
	Fields   map[string]any `json:"fields,omitempty"`
}
