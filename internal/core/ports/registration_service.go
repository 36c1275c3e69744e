package ports

import (
	"context"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

// SubmitRegistrationInput carries a public registration submission.
// Name, email and phone are mandatory; the rest is optional.
type SubmitRegistrationInput struct {
	Name             string
	Email            string
	Phone            string
	Age              *int
	Gender           string
	Address          string
	MinistryInterest string
	HearAbout        string
}

// RegistrationService owns the registration workflow. SetStatus accepts any
// enumerated status as a target regardless of the prior state; every entry
// into "approved" promotes the registrant to a member, idempotently.
type RegistrationService interface {
	Submit(ctx context.Context, in SubmitRegistrationInput) (*domain.RegistrationRequest, error)
	List(ctx context.Context) ([]*domain.RegistrationRequest, error)
	SetStatus(ctx context.Context, id string, status domain.RegistrationStatus, actor *domain.SessionClaims) (*domain.RegistrationRequest, error)
	Delete(ctx context.Context, id string) error
}
