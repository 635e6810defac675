package dto

import (
	"time"

	"github.com/firmdir-simple/models"
)

// CreateCompanyRequest is the payload for registering a company profile.
type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=120"`
	Description string  `json:"description" binding:"required,max=2000"`
	TaxID       *string `json:"taxId" binding:"omitempty,max=40"`
	Address     *string `json:"address" binding:"omitempty,max=300"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

// UpdateCompanyRequest patches a company profile; every field is optional.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=120"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	TaxID       *string `json:"taxId" binding:"omitempty,max=40"`
	Address     *string `json:"address" binding:"omitempty,max=300"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
	Website     *string `json:"website" binding:"omitempty,url"`
}

// Patch converts the request into a model patch.
func (r UpdateCompanyRequest) Patch() models.CompanyPatch {
	return models.CompanyPatch{
		Name:        r.Name,
		Description: r.Description,
		TaxID:       r.TaxID,
		Address:     r.Address,
		Phone:       r.Phone,
		Website:     r.Website,
	}
}

// CompanyResponse is the standard company representation.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaxID       *string   `json:"taxId"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Website     *string   `json:"website"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCompanyResponse shapes a company record for the API.
func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		TaxID:       c.TaxID,
		Address:     c.Address,
		Phone:       c.Phone,
		Website:     c.Website,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
