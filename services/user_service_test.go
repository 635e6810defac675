package services

import (
	"context"
	"testing"

	"github.com/firmdir-simple/lib/identity"
	"github.com/firmdir-simple/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMaterializesUserOnFirstSight(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testLogger())
	ctx := context.Background()

	ident := &identity.Identity{
		Subject: "sub-new",
		Email:   "new@example.com",
		Name:    "New User",
		Picture: "https://img.example.com/p.jpg",
	}

	user, err := svc.Resolve(ctx, ident)
	require.NoError(t, err)
	assert.Equal(t, "sub-new", user.Subject)
	assert.Equal(t, "new@example.com", user.Email)
	require.NotNil(t, user.Name)
	assert.Equal(t, "New User", *user.Name)
	require.NotNil(t, user.PhotoURL)
	assert.Equal(t, "https://img.example.com/p.jpg", *user.PhotoURL)

	again, err := svc.Resolve(ctx, ident)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID, "resolving the same subject twice must reuse the record")
}

func TestResolveWithoutProviderProfile(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testLogger())

	user, err := svc.Resolve(context.Background(), &identity.Identity{
		Subject: "sub-bare",
		Email:   "bare@example.com",
	})
	require.NoError(t, err)
	assert.Nil(t, user.Name, "missing provider profile fields stay null")
	assert.Nil(t, user.PhotoURL)
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store.Users, testLogger())
	ctx := context.Background()

	user, err := svc.Resolve(ctx, &identity.Identity{
		Subject: "sub-patch",
		Email:   "patch@example.com",
		Name:    "Before",
	})
	require.NoError(t, err)

	photo := "https://img.example.com/new.jpg"
	updated, err := svc.UpdateProfile(ctx, user.ID, models.UserPatch{PhotoURL: &photo})
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Before", *updated.Name, "name must survive a photo-only patch")
	require.NotNil(t, updated.PhotoURL)
	assert.Equal(t, photo, *updated.PhotoURL)
}
