package dto

import (
	"time"

	"github.com/firmdir-simple/models"
)

// CreateJobOfferRequest is the payload for publishing a job opening.
type CreateJobOfferRequest struct {
	Title          string  `json:"title" binding:"required,min=2,max=160"`
	Description    string  `json:"description" binding:"required,max=5000"`
	EmploymentType string  `json:"employmentType" binding:"required,oneof=full-time part-time contract internship temporary"`
	SalaryRange    *string `json:"salaryRange" binding:"omitempty,max=100"`
	Requirements   *string `json:"requirements" binding:"omitempty,max=5000"`
	ContactEmail   *string `json:"contactEmail" binding:"omitempty,email"`
	ContactLink    *string `json:"contactLink" binding:"omitempty,url"`
}

// UpdateJobOfferRequest patches a job offer; every field is optional.
type UpdateJobOfferRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=2,max=160"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	EmploymentType *string `json:"employmentType" binding:"omitempty,oneof=full-time part-time contract internship temporary"`
	SalaryRange    *string `json:"salaryRange" binding:"omitempty,max=100"`
	Requirements   *string `json:"requirements" binding:"omitempty,max=5000"`
	ContactEmail   *string `json:"contactEmail" binding:"omitempty,email"`
	ContactLink    *string `json:"contactLink" binding:"omitempty,url"`
}

// Patch converts the request into a model patch.
func (r UpdateJobOfferRequest) Patch() models.JobOfferPatch {
	p := models.JobOfferPatch{
		Title:        r.Title,
		Description:  r.Description,
		SalaryRange:  r.SalaryRange,
		Requirements: r.Requirements,
		ContactEmail: r.ContactEmail,
		ContactLink:  r.ContactLink,
	}
	if r.EmploymentType != nil {
		et := models.EmploymentType(*r.EmploymentType)
		p.EmploymentType = &et
	}
	return p
}

// JobOfferResponse is the standard job offer representation.
type JobOfferResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	EmploymentType string    `json:"employmentType"`
	SalaryRange    *string   `json:"salaryRange"`
	Requirements   *string   `json:"requirements"`
	ContactEmail   *string   `json:"contactEmail"`
	ContactLink    *string   `json:"contactLink"`
	CompanyID      string    `json:"companyId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewJobOfferResponse shapes a job offer record for the API.
func NewJobOfferResponse(j *models.JobOffer) JobOfferResponse {
	return JobOfferResponse{
		ID:             j.ID,
		Title:          j.Title,
		Description:    j.Description,
		EmploymentType: string(j.EmploymentType),
		SalaryRange:    j.SalaryRange,
		Requirements:   j.Requirements,
		ContactEmail:   j.ContactEmail,
		ContactLink:    j.ContactLink,
		CompanyID:      j.CompanyID,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}
