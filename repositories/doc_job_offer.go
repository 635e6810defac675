package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/firmdir-simple/lib/docstore"
	"github.com/firmdir-simple/models"
)

type docJobOfferRepository struct {
	ds *docstore.Store
}

func (r *docJobOfferRepository) FindByID(_ context.Context, id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	if err := r.ds.Get(colJobOffers, id, &offer); err != nil {
		return nil, translateDocError(err)
	}
	return &offer, nil
}

func (r *docJobOfferRepository) ListByCompany(_ context.Context, companyID string) ([]models.JobOffer, error) {
	offers := make([]models.JobOffer, 0)
	err := r.ds.View(func(tx *docstore.Tx) error {
		return tx.ForEach(colJobOffers, func(_ string, raw []byte) error {
			var offer models.JobOffer
			if err := json.Unmarshal(raw, &offer); err != nil {
				return err
			}
			if offer.CompanyID == companyID {
				offers = append(offers, offer)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt.Before(offers[j].CreatedAt)
	})
	return offers, nil
}

func (r *docJobOfferRepository) Create(_ context.Context, offer *models.JobOffer) error {
	stampCreate(&offer.CreatedAt, &offer.UpdatedAt)
	return r.ds.Put(colJobOffers, offer.ID, offer)
}

func (r *docJobOfferRepository) Update(_ context.Context, id string, patch models.JobOfferPatch) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := r.ds.Update(func(tx *docstore.Tx) error {
		if err := tx.Get(colJobOffers, id, &offer); err != nil {
			return err
		}
		if patch.Title != nil {
			offer.Title = *patch.Title
		}
		if patch.Description != nil {
			offer.Description = *patch.Description
		}
		if patch.EmploymentType != nil {
			offer.EmploymentType = *patch.EmploymentType
		}
		if patch.SalaryRange != nil {
			offer.SalaryRange = patch.SalaryRange
		}
		if patch.Requirements != nil {
			offer.Requirements = patch.Requirements
		}
		if patch.ContactEmail != nil {
			offer.ContactEmail = patch.ContactEmail
		}
		if patch.ContactLink != nil {
			offer.ContactLink = patch.ContactLink
		}
		offer.UpdatedAt = time.Now().UTC()
		return tx.Put(colJobOffers, id, &offer)
	})
	if err != nil {
		return nil, translateDocError(err)
	}
	return &offer, nil
}

func (r *docJobOfferRepository) Delete(_ context.Context, id string) error {
	return translateDocError(r.ds.Delete(colJobOffers, id))
}
