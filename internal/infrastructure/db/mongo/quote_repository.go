package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

const quotesCollection = "quotes"

type QuoteRepository struct {
	coll *mongo.Collection
}

func NewQuoteRepository(db *mongo.Database) *QuoteRepository {
	return &QuoteRepository{coll: db.Collection(quotesCollection)}
}

type mongoQuote struct {
	QuoteText          string `bson:"quote_text"`
	Author             string `bson:"author"`
	ScriptureReference string `bson:"scripture_reference,omitempty"`
	IsActive           bool   `bson:"is_active"`
}

// FindActive returns one active quote, or (nil, nil) when none exist.
func (r *QuoteRepository) FindActive(ctx context.Context) (*domain.Quote, error) {
	var mq mongoQuote
	err := r.coll.FindOne(ctx, bson.M{"is_active": true}, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&mq)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &domain.Quote{
		QuoteText:          mq.QuoteText,
		Author:             mq.Author,
		ScriptureReference: mq.ScriptureReference,
		IsActive:           mq.IsActive,
	}, nil
}
