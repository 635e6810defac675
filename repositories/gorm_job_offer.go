package repositories

import (
	"context"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/models"
	"gorm.io/gorm"
)

type gormJobOfferRepository struct {
	db *gorm.DB
}

func (r *gormJobOfferRepository) FindByID(ctx context.Context, id string) (*models.JobOffer, error) {
	var offer models.JobOffer
	result := r.db.WithContext(ctx).First(&offer, "id = ?", id)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &offer, nil
}

func (r *gormJobOfferRepository) ListByCompany(ctx context.Context, companyID string) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	result := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("created_at").Find(&offers)
	return offers, translateGormError(result.Error)
}

func (r *gormJobOfferRepository) Create(ctx context.Context, offer *models.JobOffer) error {
	return translateGormError(r.db.WithContext(ctx).Create(offer).Error)
}

func (r *gormJobOfferRepository) Update(ctx context.Context, id string, patch models.JobOfferPatch) (*models.JobOffer, error) {
	var offer models.JobOffer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&offer, "id = ?", id).Error; err != nil {
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
		return tx.Save(&offer).Error
	})
	if err != nil {
		return nil, translateGormError(err)
	}
	return &offer, nil
}

func (r *gormJobOfferRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.JobOffer{}, "id = ?", id)
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
