package services

import (
	"context"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/repositories"
)

// requireCompanyOwner is the ownership predicate every mutating operation
// runs before touching storage. The two stages are deliberate and ordered:
// a missing company is a 404 before ownership is ever considered, and only
// an existing company owned by someone else yields a 403. Clients depend on
// that status distinction.
func requireCompanyOwner(ctx context.Context, companies repositories.CompanyRepository, companyID, userID string) error {
	ownerID, err := companies.OwnerID(ctx, companyID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}
