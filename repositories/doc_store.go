package repositories

import (
	"errors"
	"time"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/lib/docstore"
)

// Collection names for the document backend, one per entity.
const (
	colUsers         = "users"
	colCompanies     = "companies"
	colServices      = "services"
	colServiceImages = "service_images"
	colJobOffers     = "job_offers"
)

// Collections returns every collection the document backend uses, in the
// order the store should initialize them.
func Collections() []string {
	return []string{colUsers, colCompanies, colServices, colServiceImages, colJobOffers}
}

// NewDocStore builds the document backend over an injected docstore handle.
func NewDocStore(ds *docstore.Store) *Store {
	return &Store{
		Users:         &docUserRepository{ds: ds},
		Companies:     &docCompanyRepository{ds: ds},
		Services:      &docServiceRepository{ds: ds},
		ServiceImages: &docServiceImageRepository{ds: ds},
		JobOffers:     &docJobOfferRepository{ds: ds},
	}
}

// stampCreate assigns server-side timestamps, keeping any already-set values
// so the store-transfer tool can carry records across backends unchanged.
func stampCreate(createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func translateDocError(err error) error {
	if errors.Is(err, docstore.ErrNoDocument) {
		return apperrors.ErrNotFound
	}
	return err
}
