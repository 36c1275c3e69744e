package handler

// messageResponse is returned by delete-style operations.
type messageResponse struct {
	Message string `json:"message"`
}

type submitRegistrationRequest struct {
	Name             string `json:"name"              validate:"required"`
	Email            string `json:"email"             validate:"required,email"`
	Phone            string `json:"phone"             validate:"required"`
	Age              *int   `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Address          string `json:"address,omitempty"`
	MinistryInterest string `json:"ministry_interest,omitempty"`
	HearAbout        string `json:"hear_about,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted approved"`
}
