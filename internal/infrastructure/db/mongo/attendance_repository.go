package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

const attendanceCollection = "attendance"

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{coll: db.Collection(attendanceCollection)}
}

type mongoAttendance struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EventID      primitive.ObjectID `bson:"event_id"`
	MemberID     primitive.ObjectID `bson:"member_id"`
	AttendedDate time.Time          `bson:"attended_date"`
	EventType    string             `bson:"event_type"`
}

// InsertMany inserts attendance rows unordered so a duplicate (event, member)
// pair does not abort the rest of the sheet. Duplicate-key errors are the
// expected outcome of re-submitting a sheet and are swallowed.
func (r *AttendanceRepository) InsertMany(ctx context.Context, rows []*domain.Attendance) error {
	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		eventID, err := primitive.ObjectIDFromHex(row.EventID)
		if err != nil {
			return domain.ErrEventNotFound
		}
		memberID, err := primitive.ObjectIDFromHex(row.MemberID)
		if err != nil {
			return domain.ErrMemberNotFound
		}
		docs = append(docs, mongoAttendance{
			EventID:      eventID,
			MemberID:     memberID,
			AttendedDate: row.AttendedDate,
			EventType:    row.EventType,
		})
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return nil
}

// Summary aggregates attendance by (date, event type), newest first, joining
// the member collection for attendee names.
func (r *AttendanceRepository) Summary(ctx context.Context) ([]*domain.AttendanceSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "date", Value: "$attended_date"},
				{Key: "event_type", Value: "$event_type"},
			}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "member_ids", Value: bson.D{{Key: "$addToSet", Value: "$member_id"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: membersCollection},
			{Key: "localField", Value: "member_ids"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "members"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.date", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	type summaryRow struct {
		ID struct {
			Date      time.Time `bson:"date"`
			EventType string    `bson:"event_type"`
		} `bson:"_id"`
		Total   int `bson:"total"`
		Members []struct {
			Name string `bson:"name"`
		} `bson:"members"`
	}

	var summaries []*domain.AttendanceSummary
	for cur.Next(ctx) {
		var row summaryRow
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}

		attendees := make([]string, 0, len(row.Members))
		for _, m := range row.Members {
			attendees = append(attendees, m.Name)
		}

		summaries = append(summaries, &domain.AttendanceSummary{
			Date:      row.ID.Date,
			EventType: row.ID.EventType,
			Total:     row.Total,
			Attendees: attendees,
		})
	}
	return summaries, cur.Err()
}

// EnsureIndexes creates the unique (event_id, member_id) index that makes
// sheet re-submission idempotent.
func (r *AttendanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "member_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
