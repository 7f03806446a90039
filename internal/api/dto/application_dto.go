package dto

// SubmitApplicationRequest payload.
type SubmitApplicationRequest struct {
	UserID       int64 `json:"user_id" validate:"required,gt=0"`
	InternshipID int64 `json:"internship_id" validate:"required,gt=0"`
}

// SubmitApplicationResponse echoes the new id.
type SubmitApplicationResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
