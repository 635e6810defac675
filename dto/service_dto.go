package dto

import (
	"time"

	"github.com/firmdir-simple/models"
)

// CreateServiceRequest is the payload for publishing a service under a
// company. The company id comes from the URL path, never the body.
type CreateServiceRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=120"`
	Description  string  `json:"description" binding:"required,max=2000"`
	Price        *string `json:"price" binding:"omitempty,max=60"`
	WorkingHours *string `json:"workingHours" binding:"omitempty,max=200"`
}

// UpdateServiceRequest patches a service; every field is optional.
type UpdateServiceRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=120"`
	Description  *string `json:"description" binding:"omitempty,max=2000"`
	Price        *string `json:"price" binding:"omitempty,max=60"`
	WorkingHours *string `json:"workingHours" binding:"omitempty,max=200"`
}

// Patch converts the request into a model patch.
func (r UpdateServiceRequest) Patch() models.ServicePatch {
	return models.ServicePatch{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		WorkingHours: r.WorkingHours,
	}
}

// AttachImageRequest attaches a hosted image URL to a service.
type AttachImageRequest struct {
	URL string `json:"url" binding:"required,url,max=2000"`
}

// ServiceImageResponse is the standard image representation.
type ServiceImageResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ServiceID string    `json:"serviceId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceResponse is the standard service representation. Image URLs are
// denormalized into every list and detail response.
type ServiceResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Price        *string                `json:"price"`
	WorkingHours *string                `json:"workingHours"`
	CompanyID    string                 `json:"companyId"`
	Images       []ServiceImageResponse `json:"images"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// NewServiceImageResponse shapes an image record for the API.
func NewServiceImageResponse(img *models.ServiceImage) ServiceImageResponse {
	return ServiceImageResponse{
		ID:        img.ID,
		URL:       img.URL,
		ServiceID: img.ServiceID,
		CreatedAt: img.CreatedAt,
	}
}

// NewServiceResponse shapes a service plus its images for the API.
// Images is never nil so empty lists serialize as [].
func NewServiceResponse(s *models.Service, images []models.ServiceImage) ServiceResponse {
	imgs := make([]ServiceImageResponse, 0, len(images))
	for i := range images {
		imgs = append(imgs, NewServiceImageResponse(&images[i]))
	}
	return ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Price:        s.Price,
		WorkingHours: s.WorkingHours,
		CompanyID:    s.CompanyID,
		Images:       imgs,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
