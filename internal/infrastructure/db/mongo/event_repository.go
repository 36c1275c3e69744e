package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

const eventsCollection = "events"

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	EventDate   time.Time          `bson:"event_date"`
	EventTime   string             `bson:"event_time"`
	Location    string             `bson:"location,omitempty"`
	EventType   string             `bson:"event_type"`
	CreatedBy   string             `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

// List returns all events ordered by event date ascending.
func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "event_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []*domain.Event
	for cur.Next(ctx) {
		var me mongoEvent
		if err := cur.Decode(&me); err != nil {
			return nil, err
		}
		events = append(events, me.toDomain())
	}
	return events, cur.Err()
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	doc := &mongoEvent{
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Location:    e.Location,
		EventType:   e.EventType,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) Update(ctx context.Context, id string, e *domain.Event) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       e.Title,
		"description": e.Description,
		"event_date":  e.EventDate,
		"event_time":  e.EventTime,
		"location":    e.Location,
		"event_type":  e.EventType,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var me mongoEvent
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return me.toDomain(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (me *mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		EventDate:   me.EventDate,
		EventTime:   me.EventTime,
		Location:    me.Location,
		EventType:   me.EventType,
		CreatedBy:   me.CreatedBy,
		CreatedAt:   me.CreatedAt,
	}
}
