package domain

import (
	"errors"
	"time"
)

// DefaultEventType is used when an event is created without an explicit type.
const DefaultEventType = "Service"

var ErrEventNotFound = errors.New("event not found")

// Event is a scheduled congregation activity.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Location    string    `json:"location,omitempty"`
	EventType   string    `json:"event_type"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
