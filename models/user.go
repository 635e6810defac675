package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a directory account backed by the external identity provider.
// Subject is the provider-side stable identifier; the record is materialized
// lazily on the first authenticated request.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Subject   string         `json:"-" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"not null"`
	Name      *string        `json:"name" gorm:"default:null"`
	PhotoURL  *string        `json:"photoUrl" gorm:"default:null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// UserPatch carries the profile fields a user may change. Pointer types
// distinguish "leave unchanged" from "set to empty".
type UserPatch struct {
	Name     *string
	PhotoURL *string
}
