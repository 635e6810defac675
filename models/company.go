package models

import (
	"time"

	"gorm.io/gorm"
)

// Company is the single business profile a user may register.
// The unique index on OwnerID enforces one company per owner at the
// storage layer rather than only in the application check.
type Company struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	TaxID       *string        `json:"taxId" gorm:"default:null"`
	Address     *string        `json:"address" gorm:"default:null"`
	Phone       *string        `json:"phone" gorm:"default:null"`
	Website     *string        `json:"website" gorm:"default:null"`
	OwnerID     string         `json:"ownerId" gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner     User       `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Services  []Service  `json:"services,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	JobOffers []JobOffer `json:"jobOffers,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// CompanyPatch represents a partial company update.
type CompanyPatch struct {
	Name        *string
	Description *string
	TaxID       *string
	Address     *string
	Phone       *string
	Website     *string
}
