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

const membersCollection = "members"

type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{coll: db.Collection(membersCollection)}
}

type mongoMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Age       *int               `bson:"age,omitempty"`
	Gender    string             `bson:"gender,omitempty"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone,omitempty"`
	Role      string             `bson:"role"`
	Address   string             `bson:"address,omitempty"`
	JoinDate  time.Time          `bson:"join_date"`
	CreatedAt time.Time          `bson:"created_at"`
}

// List returns all members, newest first.
func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []*domain.Member
	for cur.Next(ctx) {
		var mm mongoMember
		if err := cur.Decode(&mm); err != nil {
			return nil, err
		}
		members = append(members, mm.toDomain())
	}
	return members, cur.Err()
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	var mm mongoMember
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return mm.toDomain(), nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var mm mongoMember
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return mm.toDomain(), nil
}

// Create inserts a new member. A unique-index violation on email is
// translated to domain.ErrEmailExists for the service layer to absorb or
// surface.
func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	doc := fromDomain(m)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

// Update overwrites the full operator-editable field set, role included.
func (r *MemberRepository) Update(ctx context.Context, id string, m *domain.Member) (*domain.Member, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":    m.Name,
		"age":     m.Age,
		"gender":  m.Gender,
		"email":   m.Email,
		"phone":   m.Phone,
		"role":    m.Role,
		"address": m.Address,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mm mongoMember
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}
	return mm.toDomain(), nil
}

// UpdateProfileByEmail overwrites only the promotion profile fields. Role and
// join date are deliberately not part of the update document.
func (r *MemberRepository) UpdateProfileByEmail(ctx context.Context, email string, p domain.MemberProfile) (*domain.Member, error) {
	update := bson.M{"$set": bson.M{
		"name":    p.Name,
		"age":     p.Age,
		"gender":  p.Gender,
		"phone":   p.Phone,
		"address": p.Address,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mm mongoMember
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return mm.toDomain(), nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMemberNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index backing promotion idempotency.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func fromDomain(m *domain.Member) *mongoMember {
	return &mongoMember{
		Name:      m.Name,
		Age:       m.Age,
		Gender:    m.Gender,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		Address:   m.Address,
		JoinDate:  m.JoinDate,
		CreatedAt: m.CreatedAt,
	}
}

func (mm *mongoMember) toDomain() *domain.Member {
	return &domain.Member{
		ID:        mm.ID.Hex(),
		Name:      mm.Name,
		Age:       mm.Age,
		Gender:    mm.Gender,
		Email:     mm.Email,
		Phone:     mm.Phone,
		Role:      mm.Role,
		Address:   mm.Address,
		JoinDate:  mm.JoinDate,
		CreatedAt: mm.CreatedAt,
	}
}
