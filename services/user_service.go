package services

import (
	"context"
	"errors"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/lib/identity"
	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService maps provider identities onto local user records.
type UserService struct {
	users  repositories.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service instance.
func NewUserService(users repositories.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Resolve returns the local record for a verified identity, materializing it
// on first sight from the provider's profile claims. A concurrent first
// request for the same subject loses the unique-subject race and falls back
// to reading the record the winner created.
func (s *UserService) Resolve(ctx context.Context, ident *identity.Identity) (*models.User, error) {
	user, err := s.users.FindBySubject(ctx, ident.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user = &models.User{
		ID:       uuid.NewString(),
		Subject:  ident.Subject,
		Email:    ident.Email,
		Name:     optional(ident.Name),
		PhotoURL: optional(ident.Picture),
	}
	err = s.users.Create(ctx, user)
	if err == nil {
		s.logger.Info("materialized local user",
			zap.String("userId", user.ID),
			zap.String("subject", user.Subject))
		return user, nil
	}
	if errors.Is(err, apperrors.ErrConflict) {
		return s.users.FindBySubject(ctx, ident.Subject)
	}
	return nil, err
}

// Get retrieves a user by local id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile patches the caller's own profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	return s.users.Update(ctx, userID, patch)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
