// Package repositories defines the persistence contract for the directory
// entities and provides two interchangeable implementations: a relational
// one (GORM/Postgres) and a document one (bbolt). Services only ever see
// these interfaces; both backends produce the same observable shape.
package repositories

import (
	"context"

	"github.com/firmdir-simple/models"
)

// UserRepository persists directory accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindBySubject(ctx context.Context, subject string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Create inserts the user. A concurrent insert for the same subject
	// surfaces as apperrors.ErrConflict.
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

// CompanyRepository persists company profiles.
type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByOwner(ctx context.Context, ownerID string) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	// Create inserts the company. A second company for the same owner
	// surfaces as apperrors.ErrConflict.
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, id string, patch models.CompanyPatch) (*models.Company, error)
	// OwnerID resolves just the owning user id, the input to every
	// ownership check.
	OwnerID(ctx context.Context, id string) (string, error)
}

// ServiceRepository persists service offerings.
type ServiceRepository interface {
	FindByID(ctx context.Context, id string) (*models.Service, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, id string, patch models.ServicePatch) (*models.Service, error)
	// Delete removes the service and cascades to its images atomically.
	Delete(ctx context.Context, id string) error
}

// ServiceImageRepository persists image attachments.
type ServiceImageRepository interface {
	FindByID(ctx context.Context, id string) (*models.ServiceImage, error)
	ListByService(ctx context.Context, serviceID string) ([]models.ServiceImage, error)
	Create(ctx context.Context, image *models.ServiceImage) error
	Delete(ctx context.Context, id string) error
}

// JobOfferRepository persists job openings.
type JobOfferRepository interface {
	FindByID(ctx context.Context, id string) (*models.JobOffer, error)
	ListByCompany(ctx context.Context, companyID string) ([]models.JobOffer, error)
	Create(ctx context.Context, offer *models.JobOffer) error
	Update(ctx context.Context, id string, patch models.JobOfferPatch) (*models.JobOffer, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles the per-entity repositories of one backend.
type Store struct {
	Users         UserRepository
	Companies     CompanyRepository
	Services      ServiceRepository
	ServiceImages ServiceImageRepository
	JobOffers     JobOfferRepository
}
