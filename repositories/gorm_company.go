package repositories

import (
	"context"

	"github.com/firmdir-simple/models"
	"gorm.io/gorm"
)

type gormCompanyRepository struct {
	db *gorm.DB
}

func (r *gormCompanyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &company, nil
}

func (r *gormCompanyRepository) FindByOwner(ctx context.Context, ownerID string) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).First(&company, "owner_id = ?", ownerID)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &company, nil
}

func (r *gormCompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Order("created_at").Find(&companies)
	return companies, translateGormError(result.Error)
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	// The unique index on owner_id turns a concurrent second creation into
	// a duplicate-key error instead of a second row.
	return translateGormError(r.db.WithContext(ctx).Create(company).Error)
}

func (r *gormCompanyRepository) Update(ctx context.Context, id string, patch models.CompanyPatch) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
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
		return tx.Save(&company).Error
	})
	if err != nil {
		return nil, translateGormError(err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) OwnerID(ctx context.Context, id string) (string, error) {
	type companyOwner struct {
		OwnerID string
	}
	var owner companyOwner
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Select("owner_id").
		Where("id = ?", id).
		First(&owner).Error
	if err != nil {
		return "", translateGormError(err)
	}
	return owner.OwnerID, nil
}
