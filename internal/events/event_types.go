package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/internhub/internship-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered           EventType = "user_registered"
	EventInternshipCreated        EventType = "internship_created"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// InternshipCreatedPayload payload.
type InternshipCreatedPayload struct {
	InternshipID int64  `json:"internship_id"`
	CreatedBy    int64  `json:"created_by"`
	Title        string `json:"title"`
	Company      string `json:"company"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID int64 `json:"application_id"`
	UserID        int64 `json:"user_id"`
	InternshipID  int64 `json:"internship_id"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID int64                    `json:"application_id"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}
