package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkbjregency/membership-system/internal/core/domain"
	"github.com/gkbjregency/membership-system/internal/core/ports"
)

type stubRegRepo struct {
	regs   map[string]*domain.RegistrationRequest
	nextID int
}

func newStubRegRepo() *stubRegRepo {
	return &stubRegRepo{regs: make(map[string]*domain.RegistrationRequest)}
}

func cloneReg(r *domain.RegistrationRequest) *domain.RegistrationRequest {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (r *stubRegRepo) Create(_ context.Context, reg *domain.RegistrationRequest) (*domain.RegistrationRequest, error) {
	r.nextID++
	copy := cloneReg(reg)
	copy.ID = "reg_" + strconv.Itoa(r.nextID)
	r.regs[copy.ID] = cloneReg(copy)
	return copy, nil
}

func (r *stubRegRepo) List(_ context.Context) ([]*domain.RegistrationRequest, error) {
	out := make([]*domain.RegistrationRequest, 0, len(r.regs))
	for _, reg := range r.regs {
		out = append(out, cloneReg(reg))
	}
	return out, nil
}

func (r *stubRegRepo) UpdateStatus(_ context.Context, id string, status domain.RegistrationStatus, processedAt time.Time, processedBy string) (*domain.RegistrationRequest, error) {
	reg, ok := r.regs[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	reg.Status = status
	reg.ProcessedAt = &processedAt
	reg.ProcessedBy = processedBy
	return cloneReg(reg), nil
}

func (r *stubRegRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.regs[id]; !ok {
		return domain.ErrRegistrationNotFound
	}
	delete(r.regs, id)
	return nil
}

type stubMemberRepo struct {
	members map[string]*domain.Member // keyed by email
	nextID  int

	createCalls  int
	profileCalls int
	// failCreateWithDup simulates losing a create race against the unique
	// email index even though FindByEmail saw no member.
	failCreateWithDup bool
}

func newStubMemberRepo() *stubMemberRepo {
	return &stubMemberRepo{members: make(map[string]*domain.Member)}
}

func cloneMember(m *domain.Member) *domain.Member {
	if m == nil {
		return nil
	}
	clone := *m
	return &clone
}

func (r *stubMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, cloneMember(m))
	}
	return out, nil
}

func (r *stubMemberRepo) FindByID(_ context.Context, id string) (*domain.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) FindByEmail(_ context.Context, email string) (*domain.Member, error) {
	if m, ok := r.members[email]; ok {
		return cloneMember(m), nil
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) Create(_ context.Context, m *domain.Member) (*domain.Member, error) {
	r.createCalls++
	if r.failCreateWithDup {
		// The racing writer materialises the row the index complained about.
		r.failCreateWithDup = false
		racing := cloneMember(m)
		racing.ID = "member_race"
		r.members[racing.Email] = racing
		return nil, domain.ErrEmailExists
	}
	if _, ok := r.members[m.Email]; ok {
		return nil, domain.ErrEmailExists
	}
	r.nextID++
	copy := cloneMember(m)
	copy.ID = "member_" + strconv.Itoa(r.nextID)
	r.members[copy.Email] = cloneMember(copy)
	return copy, nil
}

func (r *stubMemberRepo) Update(_ context.Context, id string, m *domain.Member) (*domain.Member, error) {
	for email, existing := range r.members {
		if existing.ID == id {
			copy := cloneMember(m)
			copy.ID = id
			delete(r.members, email)
			r.members[copy.Email] = cloneMember(copy)
			return copy, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *stubMemberRepo) UpdateProfileByEmail(_ context.Context, email string, p domain.MemberProfile) (*domain.Member, error) {
	r.profileCalls++
	m, ok := r.members[email]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	m.Name = p.Name
	m.Age = p.Age
	m.Gender = p.Gender
	m.Phone = p.Phone
	m.Address = p.Address
	return cloneMember(m), nil
}

func (r *stubMemberRepo) Delete(_ context.Context, id string) error {
	for email, m := range r.members {
		if m.ID == id {
			delete(r.members, email)
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

type stubAudit struct {
	entries []domain.AuditEntry
}

func (a *stubAudit) Record(entry domain.AuditEntry) {
	a.entries = append(a.entries, entry)
}

func testActor() *domain.SessionClaims {
	return &domain.SessionClaims{UserID: "user_admin", Email: "admin@example.com", Role: domain.RoleAdmin}
}

func newRegService(regs *stubRegRepo, members ports.MemberRepository, audit *stubAudit) *RegistrationService {
	var recorder ports.AuditRecorder
	if audit != nil {
		recorder = audit
	}
	return NewRegistrationService(regs, members, recorder, zerolog.Nop())
}

func submitTestReg(t *testing.T, svc *RegistrationService) *domain.RegistrationRequest {
	t.Helper()
	age := 34
	reg, err := svc.Submit(context.Background(), ports.SubmitRegistrationInput{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		Phone: "555-0101",
		Age:   &age,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	return reg
}

func TestRegistrationService_Submit(t *testing.T) {
	regs := newStubRegRepo()
	svc := newRegService(regs, newStubMemberRepo(), nil)

	reg := submitTestReg(t, svc)
	if reg.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if reg.Status != domain.StatusPending {
		t.Fatalf("expected status pending, got %s", reg.Status)
	}
	if reg.SubmittedAt.IsZero() {
		t.Fatalf("expected submitted_at to be set")
	}
	if reg.ProcessedAt != nil {
		t.Fatalf("new registration must not carry processed_at")
	}
}

func TestRegistrationService_Submit_MissingFields(t *testing.T) {
	regs := newStubRegRepo()
	svc := newRegService(regs, newStubMemberRepo(), nil)

	_, err := svc.Submit(context.Background(), ports.SubmitRegistrationInput{Name: "Only Name"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, field := range []string{"email", "phone"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected error to name %q, got %q", field, err)
		}
	}
	if strings.Contains(err.Error(), "name") {
		t.Fatalf("error should not name the field that was present: %q", err)
	}
	if len(regs.regs) != 0 {
		t.Fatalf("nothing should be stored on validation failure")
	}
}

func TestRegistrationService_SetStatus_InvalidStatus(t *testing.T) {
	svc := newRegService(newStubRegRepo(), newStubMemberRepo(), nil)

	_, err := svc.SetStatus(context.Background(), "reg_1", "archived", testActor())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRegistrationService_SetStatus_NotFound(t *testing.T) {
	svc := newRegService(newStubRegRepo(), newStubMemberRepo(), nil)

	_, err := svc.SetStatus(context.Background(), "missing", domain.StatusContacted, testActor())
	if !errors.Is(err, domain.ErrRegistrationNotFound) {
		t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestRegistrationService_SetStatus_ContactedDoesNotPromote(t *testing.T) {
	regs := newStubRegRepo()
	members := newStubMemberRepo()
	svc := newRegService(regs, members, nil)
	reg := submitTestReg(t, svc)

	updated, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusContacted, testActor())
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if updated.Status != domain.StatusContacted {
		t.Fatalf("expected status contacted, got %s", updated.Status)
	}
	if updated.ProcessedAt == nil || updated.ProcessedBy != "user_admin" {
		t.Fatalf("expected processed_at/processed_by to be recorded, got %+v", updated)
	}
	if len(members.members) != 0 {
		t.Fatalf("contacted must not create members")
	}
}

func TestRegistrationService_Approve_CreatesMember(t *testing.T) {
	regs := newStubRegRepo()
	members := newStubMemberRepo()
	audit := &stubAudit{}
	svc := newRegService(regs, members, audit)
	reg := submitTestReg(t, svc)

	updated, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor())
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected status approved, got %s", updated.Status)
	}

	member := members.members["grace@example.com"]
	if member == nil {
		t.Fatalf("expected member to be created")
	}
	if member.Role != domain.DefaultMemberRole {
		t.Fatalf("expected role %s, got %s", domain.DefaultMemberRole, member.Role)
	}
	if member.JoinDate.IsZero() {
		t.Fatalf("expected join date to be set")
	}
	if member.Name != "Grace Hopper" || member.Phone != "555-0101" {
		t.Fatalf("profile fields not carried over: %+v", member)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audit.entries))
	}
	if audit.entries[0].Action != "registration.status.approved" || audit.entries[0].Actor != "user_admin" {
		t.Fatalf("unexpected audit entry: %+v", audit.entries[0])
	}
}

func TestRegistrationService_Approve_Idempotent(t *testing.T) {
	regs := newStubRegRepo()
	members := newStubMemberRepo()
	svc := newRegService(regs, members, nil)
	reg := submitTestReg(t, svc)

	if _, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor()); err != nil {
		t.Fatalf("first approve failed: %v", err)
	}

	// An operator edits the member before the second approval. Role and join
	// date must survive re-approval; the profile is overwritten.
	member := members.members["grace@example.com"]
	member.Role = "Elder"
	joined := member.JoinDate

	if _, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor()); err != nil {
		t.Fatalf("second approve failed: %v", err)
	}

	if len(members.members) != 1 {
		t.Fatalf("expected exactly one member, got %d", len(members.members))
	}
	member = members.members["grace@example.com"]
	if member.Role != "Elder" {
		t.Fatalf("re-approval must not reset role, got %s", member.Role)
	}
	if !member.JoinDate.Equal(joined) {
		t.Fatalf("re-approval must not reset join date")
	}
	if members.createCalls != 1 {
		t.Fatalf("expected one create call, got %d", members.createCalls)
	}
	if members.profileCalls != 1 {
		t.Fatalf("expected one profile overwrite, got %d", members.profileCalls)
	}
}

func TestRegistrationService_Approve_CreateRaceAbsorbed(t *testing.T) {
	regs := newStubRegRepo()
	members := newStubMemberRepo()
	members.failCreateWithDup = true
	svc := newRegService(regs, members, nil)
	reg := submitTestReg(t, svc)

	updated, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor())
	if err != nil {
		t.Fatalf("approve must absorb a lost create race, got %v", err)
	}
	if updated.Status != domain.StatusApproved {
		t.Fatalf("expected status approved, got %s", updated.Status)
	}
	if len(members.members) != 1 {
		t.Fatalf("expected exactly one member, got %d", len(members.members))
	}
	if members.profileCalls != 1 {
		t.Fatalf("expected fallback profile overwrite, got %d calls", members.profileCalls)
	}
}

func TestRegistrationService_Approve_StatusCommittedBeforePromotionFailure(t *testing.T) {
	regs := newStubRegRepo()
	members := newStubMemberRepo()
	svc := newRegService(regs, members, nil)
	reg := submitTestReg(t, svc)

	// Poison FindByEmail with an unexpected error so promotion fails.
	boom := errors.New("store offline")
	poisoned := &erringMemberRepo{stubMemberRepo: members, findErr: boom}
	svc = newRegService(regs, poisoned, nil)

	_, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor())
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected promotion error, got %v", err)
	}

	// The status write landed before the promotion attempt, so a retry finds
	// the request already approved and converges.
	if regs.regs[reg.ID].Status != domain.StatusApproved {
		t.Fatalf("status must be committed before promotion runs")
	}

	svc = newRegService(regs, members, nil)
	if _, err := svc.SetStatus(context.Background(), reg.ID, domain.StatusApproved, testActor()); err != nil {
		t.Fatalf("retry after repaired store failed: %v", err)
	}
	if len(members.members) != 1 {
		t.Fatalf("expected the retry to create the member")
	}
}

type erringMemberRepo struct {
	*stubMemberRepo
	findErr error
}

func (r *erringMemberRepo) FindByEmail(_ context.Context, _ string) (*domain.Member, error) {
	return nil, r.findErr
}

func TestRegistrationService_Delete(t *testing.T) {
	regs := newStubRegRepo()
	svc := newRegService(regs, newStubMemberRepo(), nil)
	reg := submitTestReg(t, svc)

	if err := svc.Delete(context.Background(), reg.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), reg.ID); !errors.Is(err, domain.ErrRegistrationNotFound) {
		t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
	}
}
