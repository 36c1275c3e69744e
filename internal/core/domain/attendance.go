package domain

import "time"

// Attendance records one member's presence at one event. The store keeps a
// unique index on (event_id, member_id) so a sheet can be re-submitted safely.
type Attendance struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	MemberID     string    `json:"member_id"`
	AttendedDate time.Time `json:"attended_date"`
	EventType    string    `json:"event_type"`
}

// AttendanceSummary aggregates attendance per (date, event type).
type AttendanceSummary struct {
	Date      time.Time `json:"date"`
	EventType string    `json:"event_type"`
	Total     int       `json:"total"`
	Attendees []string  `json:"attendees"`
}
