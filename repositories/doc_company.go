package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/lib/docstore"
	"github.com/firmdir-simple/models"
)

type docCompanyRepository struct {
	ds *docstore.Store
}

func (r *docCompanyRepository) FindByID(_ context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := r.ds.Get(colCompanies, id, &company); err != nil {
		return nil, translateDocError(err)
	}
	return &company, nil
}

func (r *docCompanyRepository) FindByOwner(_ context.Context, ownerID string) (*models.Company, error) {
	var found *models.Company
	err := r.ds.View(func(tx *docstore.Tx) error {
		return findCompanyByOwner(tx, ownerID, &found)
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *docCompanyRepository) List(_ context.Context) ([]models.Company, error) {
	companies := make([]models.Company, 0)
	err := r.ds.View(func(tx *docstore.Tx) error {
		return tx.ForEach(colCompanies, func(_ string, raw []byte) error {
			var company models.Company
			if err := json.Unmarshal(raw, &company); err != nil {
				return err
			}
			companies = append(companies, company)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].CreatedAt.Before(companies[j].CreatedAt)
	})
	return companies, nil
}

func (r *docCompanyRepository) Create(_ context.Context, company *models.Company) error {
	// Transactional check-and-set for the one-company-per-owner rule.
	return r.ds.Update(func(tx *docstore.Tx) error {
		var existing *models.Company
		if err := findCompanyByOwner(tx, company.OwnerID, &existing); err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrConflict
		}
		stampCreate(&company.CreatedAt, &company.UpdatedAt)
		return tx.Put(colCompanies, company.ID, company)
	})
}

func (r *docCompanyRepository) Update(_ context.Context, id string, patch models.CompanyPatch) (*models.Company, error) {
	var company models.Company
	err := r.ds.Update(func(tx *docstore.Tx) error {
		if err := tx.Get(colCompanies, id, &company); err != nil {
			return err
		}
		if patch.Name != nil {
			company.Name = *patch.Name
		}
		if patch.Description != nil {
			company.Description = *patch.Description
		}
		if patch.TaxID != nil {
			company.TaxID = patch.TaxID
		}
		if patch.Address != nil {
			company.Address = patch.Address
		}
		if patch.Phone != nil {
			company.Phone = patch.Phone
		}
		if patch.Website != nil {
			company.Website = patch.Website
		}
		company.UpdatedAt = time.Now().UTC()
		return tx.Put(colCompanies, id, &company)
	})
	if err != nil {
		return nil, translateDocError(err)
	}
	return &company, nil
}

func (r *docCompanyRepository) OwnerID(_ context.Context, id string) (string, error) {
	var company models.Company
	if err := r.ds.Get(colCompanies, id, &company); err != nil {
		return "", translateDocError(err)
	}
	return company.OwnerID, nil
}

func findCompanyByOwner(tx *docstore.Tx, ownerID string, out **models.Company) error {
	return tx.ForEach(colCompanies, func(_ string, raw []byte) error {
		var company models.Company
		if err := json.Unmarshal(raw, &company); err != nil {
			return err
		}
		if company.OwnerID == ownerID {
			c := company
			*out = &c
		}
		return nil
	})
}
