package domain

import "fmt"

// ApplicationStatus enumerates review outcomes for an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus validates a status value. Matching is exact, so
// " Accepted" is rejected rather than rewritten.
func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	status := ApplicationStatus(raw)
	switch status {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return status, nil
	}
	return "", fmt.Errorf("unknown application status %q", raw)
}

// Application links a user to an internship.
type Application struct {
	ID           int64
	UserID       int64
	InternshipID int64
	Status       ApplicationStatus
}

// UserApplication is an application joined with its internship.
type UserApplication struct {
	Internship
	ApplicationID int64             `json:"application_id"`
	Status        ApplicationStatus `json:"status"`
}
