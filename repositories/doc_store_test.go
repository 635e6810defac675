package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/lib/docstore"
	"github.com/firmdir-simple/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDocStore opens a throwaway bbolt file for testing.
func setupDocStore(t *testing.T) *Store {
	t.Helper()
	ds, err := docstore.Open(filepath.Join(t.TempDir(), "test.db"), Collections()...)
	require.NoError(t, err, "failed to open test docstore")
	t.Cleanup(func() { ds.Close() })
	return NewDocStore(ds)
}

func TestDocUserCreateAndResolve(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.NewString(), Subject: "sub-1", Email: "a@example.com"}
	require.NoError(t, store.Users.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero(), "create must stamp timestamps")

	found, err := store.Users.FindBySubject(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "sub-1", found.Subject, "subject must survive the document round trip")

	dup := &models.User{ID: uuid.NewString(), Subject: "sub-1", Email: "b@example.com"}
	assert.ErrorIs(t, store.Users.Create(ctx, dup), apperrors.ErrConflict)
}

func TestDocCompanyOnePerOwner(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	ownerID := uuid.NewString()
	first := &models.Company{ID: uuid.NewString(), Name: "Acme", Description: "desc", OwnerID: ownerID}
	require.NoError(t, store.Companies.Create(ctx, first))

	second := &models.Company{ID: uuid.NewString(), Name: "Other", Description: "desc", OwnerID: ownerID}
	assert.ErrorIs(t, store.Companies.Create(ctx, second), apperrors.ErrConflict,
		"check-and-set must reject a second company for the same owner")

	found, err := store.Companies.FindByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestDocCompanyPartialUpdate(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	company := &models.Company{ID: uuid.NewString(), Name: "Acme", Description: "desc", OwnerID: uuid.NewString()}
	require.NoError(t, store.Companies.Create(ctx, company))

	website := "https://acme.example.com"
	updated, err := store.Companies.Update(ctx, company.ID, models.CompanyPatch{Website: &website})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
	require.NotNil(t, updated.Website)
	assert.Equal(t, website, *updated.Website)

	_, err = store.Companies.Update(ctx, uuid.NewString(), models.CompanyPatch{Website: &website})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocServiceDeleteCascadesImages(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	service := &models.Service{ID: uuid.NewString(), Name: "Cleaning", Description: "desc", CompanyID: uuid.NewString()}
	require.NoError(t, store.Services.Create(ctx, service))

	mine := &models.ServiceImage{ID: uuid.NewString(), URL: "https://img.example.com/1.jpg", ServiceID: service.ID}
	foreign := &models.ServiceImage{ID: uuid.NewString(), URL: "https://img.example.com/2.jpg", ServiceID: uuid.NewString()}
	require.NoError(t, store.ServiceImages.Create(ctx, mine))
	require.NoError(t, store.ServiceImages.Create(ctx, foreign))

	require.NoError(t, store.Services.Delete(ctx, service.ID))

	_, err := store.Services.FindByID(ctx, service.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = store.ServiceImages.FindByID(ctx, mine.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "cascade must remove the service's images")
	_, err = store.ServiceImages.FindByID(ctx, foreign.ID)
	assert.NoError(t, err, "cascade must not touch other services' images")
}

func TestDocListByParent(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	companyID := uuid.NewString()
	for i := 0; i < 2; i++ {
		offer := &models.JobOffer{
			ID:             uuid.NewString(),
			Title:          "Role",
			Description:    "desc",
			EmploymentType: models.EmploymentFullTime,
			CompanyID:      companyID,
		}
		require.NoError(t, store.JobOffers.Create(ctx, offer))
	}
	stray := &models.JobOffer{
		ID:             uuid.NewString(),
		Title:          "Stray",
		Description:    "desc",
		EmploymentType: models.EmploymentContract,
		CompanyID:      uuid.NewString(),
	}
	require.NoError(t, store.JobOffers.Create(ctx, stray))

	offers, err := store.JobOffers.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Len(t, offers, 2)
}

func TestDocJobOfferPartialUpdate(t *testing.T) {
	store := setupDocStore(t)
	ctx := context.Background()

	offer := &models.JobOffer{
		ID:             uuid.NewString(),
		Title:          "Cleaner",
		Description:    "Part time cleaner",
		EmploymentType: models.EmploymentPartTime,
		CompanyID:      uuid.NewString(),
	}
	require.NoError(t, store.JobOffers.Create(ctx, offer))

	salary := "€2000-€2500"
	updated, err := store.JobOffers.Update(ctx, offer.ID, models.JobOfferPatch{SalaryRange: &salary})
	require.NoError(t, err)
	assert.Equal(t, "Cleaner", updated.Title)
	require.NotNil(t, updated.SalaryRange)
	assert.Equal(t, salary, *updated.SalaryRange)
}
