package services

import (
	"context"
	"testing"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (*CatalogService, *catalogFixture) {
	t.Helper()
	store := newTestStore(t)
	owner := newTestUser(t, store, "sub-catalog")
	intruder := newTestUser(t, store, "sub-catalog-intruder")
	company := newTestCompany(t, store, owner.ID)
	svc := NewCatalogService(store.Services, store.ServiceImages, store.Companies, testLogger())
	return svc, &catalogFixture{ownerID: owner.ID, intruderID: intruder.ID, companyID: company.ID}
}

type catalogFixture struct {
	ownerID    string
	intruderID string
	companyID  string
}

func TestCreateAndListServices(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	price := "€50"
	created, err := svc.Create(ctx, fx.ownerID, fx.companyID, &models.Service{
		Name:        "Cleaning",
		Description: "Home cleaning",
		Price:       &price,
	})
	require.NoError(t, err)
	assert.Equal(t, fx.companyID, created.CompanyID)

	items, err := svc.ListByCompany(ctx, fx.ownerID, fx.companyID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cleaning", items[0].Service.Name)
	assert.NotNil(t, items[0].Images)
	assert.Empty(t, items[0].Images, "a fresh service lists with no images")
}

func TestCreateServiceDeniedForForeignCompany(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, fx.intruderID, fx.companyID, &models.Service{Name: "Sneaky", Description: "x"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Create(ctx, fx.intruderID, uuid.NewString(), &models.Service{Name: "Ghost", Description: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "missing company resolves before ownership")

	items, err := svc.ListByCompany(ctx, fx.ownerID, fx.companyID)
	require.NoError(t, err)
	assert.Empty(t, items, "denied creations must not write")
}

func TestGetServiceOwnershipOrdering(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fx.ownerID, fx.companyID, &models.Service{Name: "Cleaning", Description: "x"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, fx.intruderID, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Get(ctx, fx.intruderID, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden, "a non-owner gets 403, not the payload")

	item, err := svc.Get(ctx, fx.ownerID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, item.Service.ID)
}

func TestAttachAndDetachImage(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	service, err := svc.Create(ctx, fx.ownerID, fx.companyID, &models.Service{Name: "Cleaning", Description: "x"})
	require.NoError(t, err)

	image, err := svc.AttachImage(ctx, fx.ownerID, service.ID, "https://img.example.com/1.jpg")
	require.NoError(t, err)

	_, err = svc.AttachImage(ctx, fx.intruderID, service.ID, "https://img.example.com/2.jpg")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	item, err := svc.Get(ctx, fx.ownerID, service.ID)
	require.NoError(t, err)
	require.Len(t, item.Images, 1)
	assert.Equal(t, "https://img.example.com/1.jpg", item.Images[0].URL)

	assert.ErrorIs(t, svc.DetachImage(ctx, fx.intruderID, image.ID), apperrors.ErrForbidden)
	require.NoError(t, svc.DetachImage(ctx, fx.ownerID, image.ID))

	item, err = svc.Get(ctx, fx.ownerID, service.ID)
	require.NoError(t, err)
	assert.Empty(t, item.Images)

	assert.ErrorIs(t, svc.DetachImage(ctx, fx.ownerID, image.ID), apperrors.ErrNotFound)
}

func TestDeleteServiceCascades(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	service, err := svc.Create(ctx, fx.ownerID, fx.companyID, &models.Service{Name: "Cleaning", Description: "x"})
	require.NoError(t, err)
	image, err := svc.AttachImage(ctx, fx.ownerID, service.ID, "https://img.example.com/1.jpg")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, fx.intruderID, service.ID), apperrors.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, fx.ownerID, service.ID))

	_, err = svc.Get(ctx, fx.ownerID, service.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.DetachImage(ctx, fx.ownerID, image.ID), apperrors.ErrNotFound,
		"cascade must take the images with the service")
}

func TestUpdateServicePartialPatch(t *testing.T) {
	svc, fx := newCatalog(t)
	ctx := context.Background()

	price := "€50"
	service, err := svc.Create(ctx, fx.ownerID, fx.companyID, &models.Service{
		Name:        "Cleaning",
		Description: "Home cleaning",
		Price:       &price,
	})
	require.NoError(t, err)

	hours := "Mon-Fri 9-17"
	updated, err := svc.Update(ctx, fx.ownerID, service.ID, models.ServicePatch{WorkingHours: &hours})
	require.NoError(t, err)
	assert.Equal(t, "Cleaning", updated.Name)
	require.NotNil(t, updated.Price)
	assert.Equal(t, "€50", *updated.Price)
	require.NotNil(t, updated.WorkingHours)
	assert.Equal(t, hours, *updated.WorkingHours)
}
