package ports

import (
	"context"
	"time"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// AttendanceRepository persists attendance rows and aggregates summaries.
type AttendanceRepository interface {
	// InsertMany inserts attendance rows, silently skipping rows that would
	// violate the (event_id, member_id) unique index.
	InsertMany(ctx context.Context, rows []*domain.Attendance) error
	// Summary groups attendance by (date, event type), newest first, with
	// attendee names resolved from the member collection.
	Summary(ctx context.Context) ([]*domain.AttendanceSummary, error)
}

// RecordAttendanceInput is one submitted attendance sheet.
type RecordAttendanceInput struct {
	Date      time.Time
	EventType string
	MemberIDs []string
}

// AttendanceService records attendance sheets and serves summaries.
type AttendanceService interface {
	Record(ctx context.Context, in RecordAttendanceInput, actor *domain.SessionClaims) (*domain.Event, error)
	Summary(ctx context.Context) ([]*domain.AttendanceSummary, error)
}
