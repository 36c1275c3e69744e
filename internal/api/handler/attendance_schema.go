package handler

type recordAttendanceRequest struct {
	Date      string   `json:"date"       validate:"required"`
	EventType string   `json:"event_type" validate:"required"`
	MemberIDs []string `json:"member_ids" validate:"required,min=1"`
}

type recordAttendanceResponse struct {
	Message string `json:"message"`
	EventID string `json:"event_id"`
	Count   int    `json:"count"`
}
