package models

import (
	"time"

	"gorm.io/gorm"
)

// Service is an offering published under a company profile.
type Service struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"not null"`
	Price        *string        `json:"price" gorm:"default:null"`
	WorkingHours *string        `json:"workingHours" gorm:"default:null"`
	CompanyID    string         `json:"companyId" gorm:"not null;index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Images []ServiceImage `json:"images,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// ServicePatch represents a partial service update.
type ServicePatch struct {
	Name         *string
	Description  *string
	Price        *string
	WorkingHours *string
}
