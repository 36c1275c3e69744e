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

const registrationsCollection = "registration_requests"

type RegistrationRepository struct {
	coll *mongo.Collection
}

func NewRegistrationRepository(db *mongo.Database) *RegistrationRepository {
	return &RegistrationRepository{coll: db.Collection(registrationsCollection)}
}

type mongoRegistration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	Phone            string             `bson:"phone"`
	Age              *int               `bson:"age,omitempty"`
	Gender           string             `bson:"gender,omitempty"`
	Address          string             `bson:"address,omitempty"`
	MinistryInterest string             `bson:"ministry_interest,omitempty"`
	HearAbout        string             `bson:"hear_about,omitempty"`
	Status           string             `bson:"status"`
	SubmittedAt      time.Time          `bson:"submitted_at"`
	ProcessedAt      *time.Time         `bson:"processed_at,omitempty"`
	ProcessedBy      string             `bson:"processed_by,omitempty"`
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.RegistrationRequest) (*domain.RegistrationRequest, error) {
	doc := &mongoRegistration{
		Name:             reg.Name,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Age:              reg.Age,
		Gender:           reg.Gender,
		Address:          reg.Address,
		MinistryInterest: reg.MinistryInterest,
		HearAbout:        reg.HearAbout,
		Status:           string(reg.Status),
		SubmittedAt:      reg.SubmittedAt,
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

// List returns all registration requests, newest submission first.
func (r *RegistrationRepository) List(ctx context.Context) ([]*domain.RegistrationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var regs []*domain.RegistrationRequest
	for cur.Next(ctx) {
		var mr mongoRegistration
		if err := cur.Decode(&mr); err != nil {
			return nil, err
		}
		regs = append(regs, mr.toDomain())
	}
	return regs, cur.Err()
}

// UpdateStatus durably commits the status change together with the
// processed_at/processed_by audit fields and returns the updated request.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus, processedAt time.Time, processedBy string) (*domain.RegistrationRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRegistrationNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":       string(status),
		"processed_at": processedAt,
		"processed_by": processedBy,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mr mongoRegistration
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return mr.toDomain(), nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRegistrationNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (mr *mongoRegistration) toDomain() *domain.RegistrationRequest {
	return &domain.RegistrationRequest{
		ID:               mr.ID.Hex(),
		Name:             mr.Name,
		Email:            mr.Email,
		Phone:            mr.Phone,
		Age:              mr.Age,
		Gender:           mr.Gender,
		Address:          mr.Address,
		MinistryInterest: mr.MinistryInterest,
		HearAbout:        mr.HearAbout,
		Status:           domain.RegistrationStatus(mr.Status),
		SubmittedAt:      mr.SubmittedAt,
		ProcessedAt:      mr.ProcessedAt,
		ProcessedBy:      mr.ProcessedBy,
	}
}
