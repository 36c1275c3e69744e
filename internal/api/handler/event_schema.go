package handler

type eventRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"        validate:"required"`
	Time        string `json:"time"        validate:"required"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
}
