package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/internhub/internship-service/internal/domain"
	"github.com/internhub/internship-service/internal/events"
	"github.com/internhub/internship-service/internal/repository"
	apperrors "github.com/internhub/internship-service/pkg/util/errorutil"
)

// ApplicationService coordinates application submission and review.
type ApplicationService struct {
	applications repository.ApplicationRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// ApplicationDependencies bundles repositories for application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		applications: deps.ApplicationRepo,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
	}
}

// Submit records a pending application. Repeat submissions are allowed.
func (s *ApplicationService) Submit(ctx context.Context, userID, internshipID int64) (*domain.Application, error) {
	app := &domain.Application{
		UserID:       userID,
		InternshipID: internshipID,
		Status:       domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventApplicationSubmitted, events.ApplicationSubmittedPayload{
		ApplicationID: app.ID,
		UserID:        app.UserID,
		InternshipID:  app.InternshipID,
	}))
	return app, nil
}

// ListForUser returns the user's applications joined with their internships.
func (s *ApplicationService) ListForUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	items, err := s.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if items == nil {
		items = []domain.UserApplication{}
	}
	return items, nil
}

// UpdateStatus overwrites the status with any recognized value.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, rawStatus string) error {
	status, err := domain.ParseApplicationStatus(rawStatus)
	if err != nil {
		return apperrors.NewValidationError("status must be one of pending, accepted, rejected")
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		if apperrors.IsNoRows(err) {
			return apperrors.NewNotFound("Application")
		}
		return apperrors.NewStoreError(err)
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventApplicationStatusChanged, events.ApplicationStatusChangedPayload{
		ApplicationID: applicationID,
		NewStatus:     status,
	}))
	return nil
}
