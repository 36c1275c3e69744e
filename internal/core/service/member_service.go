package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/api/metrics"
	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

// MemberService implements operator CRUD over members.
type MemberService struct {
	repo ports.MemberRepository
	log  zerolog.Logger
}

func NewMemberService(repo ports.MemberRepository, log zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, log: log}
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}

func (s *MemberService) Create(ctx context.Context, in ports.MemberInput) (*domain.Member, error) {
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email required", domain.ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = domain.DefaultMemberRole
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Member{
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      role,
		Address:   in.Address,
		JoinDate:  now,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	metrics.MembersCreatedTotal.Inc()
	s.log.Info().Str("member_id", created.ID).Str("email", created.Email).Msg("member created")
	return created, nil
}

func (s *MemberService) Update(ctx context.Context, id string, in ports.MemberInput) (*domain.Member, error) {
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email required", domain.ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = domain.DefaultMemberRole
	}

	updated, err := s.repo.Update(ctx, id, &domain.Member{
		Name:    in.Name,
		Age:     in.Age,
		Gender:  in.Gender,
		Email:   in.Email,
		Phone:   in.Phone,
		Role:    role,
		Address: in.Address,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
