package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// defaultSheetTime is the event time stamped on events created from an
// attendance sheet, which carries a date but no time of day.
const defaultSheetTime = "10:00"

// AttendanceService records attendance sheets and serves grouped summaries.
type AttendanceService struct {
	events ports.EventRepository
	repo   ports.AttendanceRepository
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAttendanceService(events ports.EventRepository, repo ports.AttendanceRepository, audit ports.AuditRecorder, log zerolog.Logger) *AttendanceService {
	return &AttendanceService{events: events, repo: repo, audit: audit, log: log}
}

// Record creates an event for the sheet and one attendance row per member.
// Rows already present for (event, member) are skipped by the store.
func (s *AttendanceService) Record(ctx context.Context, in ports.RecordAttendanceInput, actor *domain.SessionClaims) (*domain.Event, error) {
	if in.Date.IsZero() || in.EventType == "" || len(in.MemberIDs) == 0 {
		return nil, fmt.Errorf("%w: date, event type, and member ids required", domain.ErrValidation)
	}

	event, err := s.events.Create(ctx, &domain.Event{
		Title:     in.EventType,
		EventDate: in.Date,
		EventTime: defaultSheetTime,
		EventType: in.EventType,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	rows := make([]*domain.Attendance, 0, len(in.MemberIDs))
	for _, memberID := range in.MemberIDs {
		rows = append(rows, &domain.Attendance{
			EventID:      event.ID,
			MemberID:     memberID,
			AttendedDate: in.Date,
			EventType:    in.EventType,
		})
	}

	if err := s.repo.InsertMany(ctx, rows); err != nil {
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{
			Actor:     actor.UserID,
			Action:    "attendance.record",
			Entity:    "event",
			EntityID:  event.ID,
			Timestamp: time.Now().UTC(),
		})
	}

	s.log.Info().Str("event_id", event.ID).Int("members", len(rows)).Msg("attendance recorded")
	return event, nil
}

func (s *AttendanceService) Summary(ctx context.Context) ([]*domain.AttendanceSummary, error) {
	return s.repo.Summary(ctx)
}
