package domain

import (
	"errors"
	"time"
)

// DefaultMemberRole is assigned when a member is created without an explicit role.
const DefaultMemberRole = "Member"

var ErrMemberNotFound = errors.New("member not found")
var ErrEmailExists = errors.New("email already exists")

// Member is a confirmed congregant record. Email is unique across the
// collection; the store enforces it with a unique index.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       *int      `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Address   string    `json:"address,omitempty"`
	JoinDate  time.Time `json:"join_date"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberProfile is the overwrite set applied when a registration is promoted
// onto an existing member. Role and join date are deliberately excluded.
type MemberProfile struct {
	Name    string
	Age     *int
	Gender  string
	Phone   string
	Address string
}
