package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

const auditCollection = "audit_entries"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Actor     string    `bson:"actor"`
	Action    string    `bson:"action"`
	Entity    string    `bson:"entity"`
	EntityID  string    `bson:"entity_id"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.coll.InsertOne(ctx, mongoAuditEntry{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Timestamp: entry.Timestamp,
	})
	return err
}
