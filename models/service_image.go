package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceImage is a hosted image URL attached to a service. The API stores
// only the URL; the underlying file belongs to whatever host issued it.
type ServiceImage struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	URL       string         `json:"url" gorm:"not null"`
	ServiceID string         `json:"serviceId" gorm:"not null;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
