package services

import (
	"context"

	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceWithImages pairs a service with its denormalized image records.
// The join happens here, not in the storage layer, so both backends stay
// flat per-entity stores.
type ServiceWithImages struct {
	Service models.Service
	Images  []models.ServiceImage
}

// CatalogService handles business rules for service offerings and their
// image attachments.
type CatalogService struct {
	services  repositories.ServiceRepository
	images    repositories.ServiceImageRepository
	companies repositories.CompanyRepository
	logger    *zap.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(
	services repositories.ServiceRepository,
	images repositories.ServiceImageRepository,
	companies repositories.CompanyRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{services: services, images: images, companies: companies, logger: logger}
}

// ListByCompany returns a company's services, each with its image URLs.
func (s *CatalogService) ListByCompany(ctx context.Context, userID, companyID string) ([]ServiceWithImages, error) {
	if err := requireCompanyOwner(ctx, s.companies, companyID, userID); err != nil {
		return nil, err
	}
	services, err := s.services.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceWithImages, 0, len(services))
	for _, svc := range services {
		images, err := s.images.ListByService(ctx, svc.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ServiceWithImages{Service: svc, Images: images})
	}
	return out, nil
}

// Get retrieves a single service with its images. Existence resolves before
// ownership, so a missing id is a 404 and a foreign one a 403.
func (s *CatalogService) Get(ctx context.Context, userID, serviceID string) (*ServiceWithImages, error) {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyOwner(ctx, s.companies, service.CompanyID, userID); err != nil {
		return nil, err
	}
	images, err := s.images.ListByService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return &ServiceWithImages{Service: *service, Images: images}, nil
}

// Create publishes a service under the caller's company. The company id
// comes from the URL path, never from the body.
func (s *CatalogService) Create(ctx context.Context, userID, companyID string, service *models.Service) (*models.Service, error) {
	if err := requireCompanyOwner(ctx, s.companies, companyID, userID); err != nil {
		return nil, err
	}
	service.ID = uuid.NewString()
	service.CompanyID = companyID
	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// Update patches a service after the ownership check.
func (s *CatalogService) Update(ctx context.Context, userID, serviceID string, patch models.ServicePatch) (*models.Service, error) {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyOwner(ctx, s.companies, service.CompanyID, userID); err != nil {
		return nil, err
	}
	return s.services.Update(ctx, serviceID, patch)
}

// Delete removes a service and cascades to its images.
func (s *CatalogService) Delete(ctx context.Context, userID, serviceID string) error {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if err := requireCompanyOwner(ctx, s.companies, service.CompanyID, userID); err != nil {
		return err
	}
	if err := s.services.Delete(ctx, serviceID); err != nil {
		return err
	}
	s.logger.Info("service deleted with image cascade",
		zap.String("serviceId", serviceID),
		zap.String("companyId", service.CompanyID))
	return nil
}

// AttachImage records a hosted image URL against a service.
func (s *CatalogService) AttachImage(ctx context.Context, userID, serviceID, url string) (*models.ServiceImage, error) {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := requireCompanyOwner(ctx, s.companies, service.CompanyID, userID); err != nil {
		return nil, err
	}
	image := &models.ServiceImage{
		ID:        uuid.NewString(),
		URL:       url,
		ServiceID: serviceID,
	}
	if err := s.images.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DetachImage removes a single image record. The underlying file stays with
// whatever host issued the URL.
func (s *CatalogService) DetachImage(ctx context.Context, userID, imageID string) error {
	image, err := s.images.FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	service, err := s.services.FindByID(ctx, image.ServiceID)
	if err != nil {
		return err
	}
	if err := requireCompanyOwner(ctx, s.companies, service.CompanyID, userID); err != nil {
		return err
	}
	return s.images.Delete(ctx, imageID)
}
