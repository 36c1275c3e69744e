package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/api/metrics"
	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// RegistrationService owns the registration workflow and the promotion of
// approved registrants into the member collection.
type RegistrationService struct {
	regs    ports.RegistrationRepository
	members ports.MemberRepository
	audit   ports.AuditRecorder
	log     zerolog.Logger
}

func NewRegistrationService(regs ports.RegistrationRepository, members ports.MemberRepository, audit ports.AuditRecorder, log zerolog.Logger) *RegistrationService {
	return &RegistrationService{regs: regs, members: members, audit: audit, log: log}
}

// Submit stores a public registration request with status pending.
func (s *RegistrationService) Submit(ctx context.Context, in ports.SubmitRegistrationInput) (*domain.RegistrationRequest, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", domain.ErrValidation, strings.Join(missing, ", "))
	}

	reg := &domain.RegistrationRequest{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Age:              in.Age,
		Gender:           in.Gender,
		Address:          in.Address,
		MinistryInterest: in.MinistryInterest,
		HearAbout:        in.HearAbout,
		Status:           domain.StatusPending,
		SubmittedAt:      time.Now().UTC(),
	}

	created, err := s.regs.Create(ctx, reg)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store registration")
		return nil, err
	}

	metrics.RegistrationsSubmittedTotal.Inc()
	s.log.Info().Str("registration_id", created.ID).Str("email", created.Email).Msg("registration submitted")
	return created, nil
}

func (s *RegistrationService) List(ctx context.Context) ([]*domain.RegistrationRequest, error) {
	return s.regs.List(ctx)
}

// SetStatus moves a registration to the given status. Any enumerated status
// is a legal target from any prior state; processed_at/processed_by are
// recorded on every mutation. The status row is committed before promotion,
// and promotion is idempotent, so a re-approval or a retry after a failed
// promotion converges on exactly one member per registration email.
func (s *RegistrationService) SetStatus(ctx context.Context, id string, status domain.RegistrationStatus, actor *domain.SessionClaims) (*domain.RegistrationRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	reg, err := s.regs.UpdateStatus(ctx, id, status, time.Now().UTC(), actor.UserID)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationStatusTotal.WithLabelValues(string(status)).Inc()
	s.record(actor, "registration.status."+string(status), "registration", reg.ID)

	if status == domain.StatusApproved {
		if _, err := s.promote(ctx, reg); err != nil {
			s.log.Error().Err(err).Str("registration_id", reg.ID).Str("email", reg.Email).Msg("promotion failed after status commit")
			return nil, fmt.Errorf("promote registration %s: %w", reg.ID, err)
		}
	}

	return reg, nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	return s.regs.Delete(ctx, id)
}

// promote materialises an approved registration as exactly one member row,
// keyed by email. An existing member keeps role and join date; only the
// profile fields are overwritten. A duplicate-key error on create means a
// concurrent approval won the race, so it is absorbed by retrying as an
// overwrite rather than surfaced as a conflict.
func (s *RegistrationService) promote(ctx context.Context, reg *domain.RegistrationRequest) (*domain.Member, error) {
	profile := domain.MemberProfile{
		Name:    reg.Name,
		Age:     reg.Age,
		Gender:  reg.Gender,
		Phone:   reg.Phone,
		Address: reg.Address,
	}

	_, err := s.members.FindByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		metrics.PromotionsTotal.WithLabelValues("updated").Inc()
		return s.members.UpdateProfileByEmail(ctx, reg.Email, profile)

	case errors.Is(err, domain.ErrMemberNotFound):
		now := time.Now().UTC()
		created, err := s.members.Create(ctx, &domain.Member{
			Name:      reg.Name,
			Age:       reg.Age,
			Gender:    reg.Gender,
			Email:     reg.Email,
			Phone:     reg.Phone,
			Role:      domain.DefaultMemberRole,
			Address:   reg.Address,
			JoinDate:  now,
			CreatedAt: now,
		})
		if errors.Is(err, domain.ErrEmailExists) {
			metrics.PromotionsTotal.WithLabelValues("updated").Inc()
			return s.members.UpdateProfileByEmail(ctx, reg.Email, profile)
		}
		if err != nil {
			return nil, err
		}
		metrics.PromotionsTotal.WithLabelValues("created").Inc()
		s.log.Info().Str("member_id", created.ID).Str("email", created.Email).Msg("registration promoted to member")
		return created, nil

	default:
		return nil, err
	}
}

func (s *RegistrationService) record(actor *domain.SessionClaims, action, entity, entityID string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEntry{
		Actor:     actor.UserID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	})
}
