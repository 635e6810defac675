package dto

import (
	"time"

	"github.com/firmdir-simple/models"
)

// ProfileResponse is the caller-facing view of the authenticated account,
// combining the provider-side claims with the local record.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateProfileRequest patches the local profile fields. Absent fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	PhotoURL *string `json:"photoUrl" binding:"omitempty,url"`
}

// Patch converts the request into a model patch.
func (r UpdateProfileRequest) Patch() models.UserPatch {
	return models.UserPatch{Name: r.Name, PhotoURL: r.PhotoURL}
}

// NewProfileResponse shapes a user record for the API.
func NewProfileResponse(u *models.User) ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Subject:   u.Subject,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
