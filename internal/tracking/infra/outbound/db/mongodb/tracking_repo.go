package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	trackingDomain "github.com/davicafu/bookcourier/internal/tracking/domain"
)

// LedgerRepoMongoDB implementa LedgerRepository sobre la colección "trackings".
type LedgerRepoMongoDB struct {
	coll *mongo.Collection
}

func NewLedgerRepoMongoDB(db *mongo.Database) *LedgerRepoMongoDB {
	return &LedgerRepoMongoDB{coll: db.Collection("trackings")}
}

// --- Structs de BSON para el mapeo ---
// Se definen localmente para no "contaminar" el dominio con tags de BSON.

type mongoTrackingEvent struct {
	ID         uuid.UUID `bson:"_id"`
	TrackingID string    `bson:"trackingId"`
	Status     string    `bson:"status"`
	Message    string    `bson:"message"`
	CreatedAt  time.Time `bson:"createdAt"`
}

func (r *LedgerRepoMongoDB) Append(ctx context.Context, e *trackingDomain.TrackingEvent) error {
	me := &mongoTrackingEvent{
		ID:         e.ID,
		TrackingID: e.TrackingID,
		Status:     e.Status,
		Message:    e.Message,
		CreatedAt:  e.CreatedAt,
	}
	_, err := r.coll.InsertOne(ctx, me)
	return err
}

func (r *LedgerRepoMongoDB) ListByTrackingID(ctx context.Context, trackingID string) ([]*trackingDomain.TrackingEvent, error) {
	// Sin SetSort: el orden natural de la colección ES el orden de inserción
	// y los callers dependen de que sea cronológico.
	cursor, err := r.coll.Find(ctx, bson.M{"trackingId": trackingID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*trackingDomain.TrackingEvent
	for cursor.Next(ctx) {
		var me mongoTrackingEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, err
		}
		events = append(events, &trackingDomain.TrackingEvent{
			ID:         me.ID,
			TrackingID: me.TrackingID,
			Status:     me.Status,
			Message:    me.Message,
			CreatedAt:  me.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Verificación estática
var _ trackingDomain.LedgerRepository = (*LedgerRepoMongoDB)(nil)
