package dto

// CreateInternshipRequest payload.
type CreateInternshipRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
	Company     string `json:"company" validate:"required,notblank,max=255"`
	Location    string `json:"location" validate:"required,notblank,max=255"`
	CreatedBy   int64  `json:"created_by" validate:"required,gt=0"`
}

// CreateInternshipResponse echoes the new id.
type CreateInternshipResponse struct {
	Message      string `json:"message"`
	InternshipID int64  `json:"internship_id"`
}
