package models

import (
	"time"

	"gorm.io/gorm"
)

// EmploymentType enumerates the accepted employment arrangements.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentTemporary  EmploymentType = "temporary"
)

// JobOffer is a job opening published under a company profile.
type JobOffer struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description" gorm:"not null"`
	EmploymentType EmploymentType `json:"employmentType" gorm:"type:varchar(20);not null"`
	SalaryRange    *string        `json:"salaryRange" gorm:"default:null"`
	Requirements   *string        `json:"requirements" gorm:"default:null"`
	ContactEmail   *string        `json:"contactEmail" gorm:"default:null"`
	ContactLink    *string        `json:"contactLink" gorm:"default:null"`
	CompanyID      string         `json:"companyId" gorm:"not null;index"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// JobOfferPatch represents a partial job offer update.
type JobOfferPatch struct {
	Title          *string
	Description    *string
	EmploymentType *EmploymentType
	SalaryRange    *string
	Requirements   *string
	ContactEmail   *string
	ContactLink    *string
}
