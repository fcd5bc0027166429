// internal/app/system/refs/refs.go

// Package refs resolves record references handed out by the data service.
//
// A reference is an opaque string (usually a URL) whose trailing 24 characters
// are the hexadecimal identifier of the referenced record, e.g.
//
//	https://my.living-apps.de/rest/apps/5f.../records/65a1b2c3d4e5f6a7b8c9d0e1
//
// Parse extracts that identifier. Anything else yields the zero Ref, which is
// the "unresolved" variant; callers never need to nil-check.
package refs

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDLength is the fixed width of a record identifier.
const IDLength = 24

var trailingID = regexp.MustCompile(`(?i)([0-9a-f]{24})$`)

// Ref is a parsed reference. The zero value is unresolved.
type Ref struct {
	id string
}

// Parse extracts the trailing record identifier from s.
// The identifier keeps the case it had in s.
func Parse(s string) Ref {
	if s == "" {
		return Ref{}
	}
	m := trailingID.FindStringSubmatch(s)
	if m == nil {
		return Ref{}
	}
	return Ref{id: m[1]}
}

// ID returns the record identifier and whether the reference resolved.
func (r Ref) ID() (string, bool) {
	return r.id, r.id != ""
}

// Resolved reports whether a record identifier was found.
func (r Ref) Resolved() bool {
	return r.id != ""
}

// String returns the identifier, or "" for an unresolved reference.
func (r Ref) String() string {
	return r.id
}

// ObjectID converts the identifier to a MongoDB ObjectID.
func (r Ref) ObjectID() (primitive.ObjectID, bool) {
	if r.id == "" {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(r.id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// FromObjectID builds the reference string used for documents stored in
// MongoDB, where the relation is kept as a raw ObjectID.
func FromObjectID(oid primitive.ObjectID) string {
	if oid.IsZero() {
		return ""
	}
	return oid.Hex()
}
