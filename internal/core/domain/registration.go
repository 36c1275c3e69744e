package domain

import (
	"errors"
	"time"
)

// RegistrationStatus is the lifecycle state of a registration request.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusContacted RegistrationStatus = "contacted"
	StatusApproved  RegistrationStatus = "approved"
)

var ErrRegistrationNotFound = errors.New("registration not found")
var ErrValidation = errors.New("validation failed")

// IsValid reports whether s is one of the enumerated statuses. Operators may
// move a request between any of them; there is no transition guard.
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusApproved:
		return true
	}
	return false
}

// RegistrationRequest is a prospective member's public submission.
type RegistrationRequest struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Age              *int               `json:"age,omitempty"`
	Gender           string             `json:"gender,omitempty"`
	Address          string             `json:"address,omitempty"`
	MinistryInterest string             `json:"ministry_interest,omitempty"`
	HearAbout        string             `json:"hear_about,omitempty"`
	Status           RegistrationStatus `json:"status"`
	SubmittedAt      time.Time          `json:"submitted_at"`
	ProcessedAt      *time.Time         `json:"processed_at,omitempty"`
	ProcessedBy      string             `json:"processed_by,omitempty"`
}
