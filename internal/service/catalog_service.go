package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/internhub/internship-service/internal/domain"
	"github.com/internhub/internship-service/internal/events"
	"github.com/internhub/internship-service/internal/repository"
	apperrors "github.com/internhub/internship-service/pkg/util/errorutil"
)

// CatalogService manages internship postings.
type CatalogService struct {
	internships repository.InternshipRepository
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// CatalogDependencies bundles repositories for catalog service.
type CatalogDependencies struct {
	InternshipRepo repository.InternshipRepository
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// CreateInternshipInput describes a new posting.
type CreateInternshipInput struct {
	Title       string
	Description string
	Company     string
	Location    string
	CreatedBy   int64
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		internships: deps.InternshipRepo,
		dispatcher:  deps.Dispatcher,
		logger:      logger,
	}
}

// CreateInternship inserts a posting. The creator must exist; the store's
// foreign key enforces it.
func (s *CatalogService) CreateInternship(ctx context.Context, input CreateInternshipInput) (*domain.Internship, error) {
	internship := &domain.Internship{
		Title:       input.Title,
		Description: input.Description,
		Company:     input.Company,
		Location:    input.Location,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.internships.Create(ctx, internship); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventInternshipCreated, events.InternshipCreatedPayload{
		InternshipID: internship.ID,
		CreatedBy:    internship.CreatedBy,
		Title:        internship.Title,
		Company:      internship.Company,
	}))
	return internship, nil
}

// ListInternships returns every posting in insertion order.
func (s *CatalogService) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	items, err := s.internships.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if items == nil {
		items = []domain.Internship{}
	}
	return items, nil
}

// GetInternship loads one posting.
func (s *CatalogService) GetInternship(ctx context.Context, id int64) (*domain.Internship, error) {
	internship, err := s.internships.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNoRows(err) {
			return nil, apperrors.NewNotFound("Internship")
		}
		return nil, apperrors.NewStoreError(err)
	}
	return internship, nil
}
