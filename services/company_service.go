package services

import (
	"context"
	"errors"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyService handles business rules for company profiles.
type CompanyService struct {
	companies repositories.CompanyRepository
	logger    *zap.Logger
}

// NewCompanyService creates a new company service instance.
func NewCompanyService(companies repositories.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{companies: companies, logger: logger}
}

// List returns every company in the directory.
func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.companies.List(ctx)
}

// Get retrieves a single company profile.
func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// Create registers the caller's company. A user owns at most one company;
// both the up-front check and the storage-level uniqueness rule report the
// violation as a field-level validation failure, which clients receive as a
// 400 rather than a conflict.
func (s *CompanyService) Create(ctx context.Context, ownerID string, company *models.Company) (*models.Company, error) {
	_, err := s.companies.FindByOwner(ctx, ownerID)
	if err == nil {
		return nil, apperrors.NewValidationError("company", "user already owns a company")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	company.ID = uuid.NewString()
	company.OwnerID = ownerID
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewValidationError("company", "user already owns a company")
		}
		return nil, err
	}
	s.logger.Info("company registered",
		zap.String("companyId", company.ID),
		zap.String("ownerId", ownerID))
	return company, nil
}

// Update patches a company profile after the ownership check.
func (s *CompanyService) Update(ctx context.Context, userID, companyID string, patch models.CompanyPatch) (*models.Company, error) {
	if err := requireCompanyOwner(ctx, s.companies, companyID, userID); err != nil {
		return nil, err
	}
	return s.companies.Update(ctx, companyID, patch)
}
