package testutil

import (
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID returns a fresh 24-hex record id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// RecordURL builds a data-service style reference to id.
func RecordURL(id string) string {
	return "https://my.living-apps.de/rest/apps/000000000000000000000000/records/" + id
}

// Text returns a pointer to s for optional text fields.
func Text(s string) *string {
	return &s
}

// optional maps "" to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Kurs builds a course record. An empty titel leaves the field absent.
func Kurs(id, titel, startdatum string, preis *float64, dozentID string) models.Kurs {
	k := models.Kurs{
		RecordID: id,
		Fields: models.KursFields{
			Titel:      optional(titel),
			Startdatum: startdatum,
			Preis:      preis,
		},
	}
	if dozentID != "" {
		k.Fields.Dozent = RecordURL(dozentID)
	}
	return k
}

// Dozent builds an instructor record. An empty name leaves the field absent.
func Dozent(id, name string) models.Dozent {
	return models.Dozent{RecordID: id, Fields: models.DozentFields{Name: optional(name)}}
}

// Teilnehmer builds a participant record. An empty name leaves the field absent.
func Teilnehmer(id, name string) models.Teilnehmer {
	return models.Teilnehmer{RecordID: id, Fields: models.TeilnehmerFields{Name: optional(name)}}
}

// Raum builds a room record.
func Raum(id string) models.Raum {
	return models.Raum{RecordID: id}
}

// Anmeldung builds a registration record.
func Anmeldung(id, teilnehmerID, kursID, datum string, bezahlt bool) models.Anmeldung {
	a := models.Anmeldung{
		RecordID: id,
		Fields: models.AnmeldungFields{
			Anmeldedatum: datum,
			Bezahlt:      bezahlt,
		},
	}
	if teilnehmerID != "" {
		a.Fields.Teilnehmer = RecordURL(teilnehmerID)
	}
	if kursID != "" {
		a.Fields.Kurs = RecordURL(kursID)
	}
	return a
}
