package services

import (
	"context"

	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobOfferService handles business rules for job openings.
type JobOfferService struct {
	offers    repositories.JobOfferRepository
	companies repositories.CompanyRepository
	logger    *zap.Logger
}

// NewJobOfferService creates a new job offer service instance.
func NewJobOfferService(offers repositories.JobOfferRepository, companies repositories.CompanyRepository, logger *zap.Logger) *JobOfferService {
	return &JobOfferService{offers: offers, companies: companies, logger: logger}
}

// ListByCompany returns a company's job openings.
func (s *JobOfferService) ListByCompany(ctx context.Context, userID, companyID string) ([]models.JobOffer, error) {
	if err := requireCompanyOwner(ctx, s.companies, companyID, userID); err != nil {
		return nil, err
	}
	return s.offers.ListByCompany(ctx, companyID)
}

// Get retrieves a single job offer after the ownership check.
func (s *JobOfferService) Get(ctx context.Context, userID, offerID string) (*models.JobOffer, error) {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyOwner(ctx, s.companies, offer.CompanyID, userID); err != nil {
		return nil, err
	}
	return offer, nil
}

// Create publishes a job opening under the caller's company.
func (s *JobOfferService) Create(ctx context.Context, userID, companyID string, offer *models.JobOffer) (*models.JobOffer, error) {
	if err := requireCompanyOwner(ctx, s.companies, companyID, userID); err != nil {
		return nil, err
	}
	offer.ID = uuid.NewString()
	offer.CompanyID = companyID
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Update patches a job offer after the ownership check.
func (s *JobOfferService) Update(ctx context.Context, userID, offerID string, patch models.JobOfferPatch) (*models.JobOffer, error) {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyOwner(ctx, s.companies, offer.CompanyID, userID); err != nil {
		return nil, err
	}
	return s.offers.Update(ctx, offerID, patch)
}

// Delete removes a job offer after the ownership check.
func (s *JobOfferService) Delete(ctx context.Context, userID, offerID string) error {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return err
	}
	if err := requireCompanyOwner(ctx, s.companies, offer.CompanyID, userID); err != nil {
		return err
	}
	if err := s.offers.Delete(ctx, offerID); err != nil {
		return err
	}
	s.logger.Info("job offer deleted",
		zap.String("jobOfferId", offerID),
		zap.String("companyId", offer.CompanyID))
	return nil
}
