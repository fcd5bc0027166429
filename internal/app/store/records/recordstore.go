// internal/app/store/records/recordstore.go
package recordstore

import (
	"context"
	"fmt"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/refs"
	"github.com/mnogodumalon/kurs70/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store reads the dashboard collections from a MongoDB mirror of the data
// service. Relations are stored as ObjectIDs and handed out as hex
// references, so the usual reference resolution applies.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

type kursDoc struct {
	ID         primitive.ObjectID `bson:"_id"`
	Titel      *string            `bson:"titel,omitempty"`
	Startdatum string             `bson:"startdatum,omitempty"`
	Preis      *float64           `bson:"preis,omitempty"`
	DozentID   primitive.ObjectID `bson:"dozent_id,omitempty"`
}

type personDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name *string            `bson:"name,omitempty"`
}

type anmeldungDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	TeilnehmerID primitive.ObjectID `bson:"teilnehmer_id,omitempty"`
	KursID       primitive.ObjectID `bson:"kurs_id,omitempty"`
	Anmeldedatum string             `bson:"anmeldedatum,omitempty"`
	Bezahlt      bool               `bson:"bezahlt"`
}

// findAll decodes every document of coll in _id order.
func findAll[D any](ctx context.Context, db *mongo.Database, coll string) ([]D, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := db.Collection(coll).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll, err)
	}
	defer cur.Close(ctx)

	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll, err)
	}
	return docs, nil
}

func (s *Store) ListKurse(ctx context.Context) ([]models.Kurs, error) {
	docs, err := findAll[kursDoc](ctx, s.db, dataservice.CollKurse)
	if err != nil {
		return nil, err
	}
	out := make([]models.Kurs, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Kurs{
			RecordID: d.ID.Hex(),
			Fields: models.KursFields{
				Titel:      d.Titel,
				Startdatum: d.Startdatum,
				Preis:      d.Preis,
				Dozent:     refs.FromObjectID(d.DozentID),
			},
		})
	}
	return out, nil
}

func (s *Store) ListDozenten(ctx context.Context) ([]models.Dozent, error) {
	docs, err := findAll[personDoc](ctx, s.db, dataservice.CollDozenten)
	if err != nil {
		return nil, err
	}
	out := make([]models.Dozent, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Dozent{RecordID: d.ID.Hex(), Fields: models.DozentFields{Name: d.Name}})
	}
	return out, nil
}

func (s *Store) ListTeilnehmer(ctx context.Context) ([]models.Teilnehmer, error) {
	docs, err := findAll[personDoc](ctx, s.db, dataservice.CollTeilnehmer)
	if err != nil {
		return nil, err
	}
	out := make([]models.Teilnehmer, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Teilnehmer{RecordID: d.ID.Hex(), Fields: models.TeilnehmerFields{Name: d.Name}})
	}
	return out, nil
}

// ListRaeume returns rooms with every stored attribute except _id as an
// opaque field bundle.
func (s *Store) ListRaeume(ctx context.Context) ([]models.Raum, error) {
	docs, err := findAll[bson.M](ctx, s.db, dataservice.CollRaeume)
	if err != nil {
		return nil, err
	}
	out := make([]models.Raum, 0, len(docs))
	for _, d := range docs {
		r := models.Raum{Fields: make(map[string]any, len(d))}
		for k, v := range d {
			if k == "_id" {
				if oid, ok := v.(primitive.ObjectID); ok {
					r.RecordID = oid.Hex()
				}
				continue
			}
			r.Fields[k] = v
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) ListAnmeldungen(ctx context.Context) ([]models.Anmeldung, error) {
	docs, err := findAll[anmeldungDoc](ctx, s.db, dataservice.CollAnmeldungen)
	if err != nil {
		return nil, err
	}
	out := make([]models.Anmeldung, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Anmeldung{
			RecordID: d.ID.Hex(),
			Fields: models.AnmeldungFields{
				Teilnehmer:   refs.FromObjectID(d.TeilnehmerID),
				Kurs:         refs.FromObjectID(d.KursID),
				Anmeldedatum: d.Anmeldedatum,
				Bezahlt:      d.Bezahlt,
			},
		})
	}
	return out, nil
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
