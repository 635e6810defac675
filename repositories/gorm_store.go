package repositories

import (
	"errors"

	"github.com/firmdir-simple/apperrors"
	"gorm.io/gorm"
)

// NewGormStore builds the relational backend over an injected GORM handle.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:         &gormUserRepository{db: db},
		Companies:     &gormCompanyRepository{db: db},
		Services:      &gormServiceRepository{db: db},
		ServiceImages: &gormServiceImageRepository{db: db},
		JobOffers:     &gormJobOfferRepository{db: db},
	}
}

// translateGormError maps GORM sentinel errors onto the shared taxonomy.
// TranslateError is enabled on the handle, so unique-index violations arrive
// as gorm.ErrDuplicatedKey on both Postgres and the SQLite used in tests.
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict
	default:
		return err
	}
}
