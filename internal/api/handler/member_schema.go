package handler

import "github.com/gkbjregency/membership-system/internal/core/ports"

type memberRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Age     *int   `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Role    string `json:"role,omitempty"`
	Address string `json:"address,omitempty"`
}

func (r memberRequest) toInput() ports.MemberInput {
	return ports.MemberInput{
		Name:    r.Name,
		Email:   r.Email,
		Age:     r.Age,
		Gender:  r.Gender,
		Phone:   r.Phone,
		Role:    r.Role,
		Address: r.Address,
	}
}
