package repositories

import (
	"context"

	"github.com/firmdir-simple/models"
	"gorm.io/gorm"
)

type gormServiceRepository struct {
	db *gorm.DB
}

func (r *gormServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	var service models.Service
	result := r.db.WithContext(ctx).First(&service, "id = ?", id)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &service, nil
}

func (r *gormServiceRepository) ListByCompany(ctx context.Context, companyID string) ([]models.Service, error) {
	var services []models.Service
	result := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("created_at").Find(&services)
	return services, translateGormError(result.Error)
}

func (r *gormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return translateGormError(r.db.WithContext(ctx).Create(service).Error)
}

func (r *gormServiceRepository) Update(ctx context.Context, id string, patch models.ServicePatch) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, "id = ?", id).Error; err != nil {
			return err
		}
		if patch.Name != nil {
			service.Name = *patch.Name
		}
		if patch.Description != nil {
			service.Description = *patch.Description
		}
		if patch.Price != nil {
			service.Price = patch.Price
		}
		if patch.WorkingHours != nil {
			service.WorkingHours = patch.WorkingHours
		}
		return tx.Save(&service).Error
	})
	if err != nil {
		return nil, translateGormError(err)
	}
	return &service, nil
}

func (r *gormServiceRepository) Delete(ctx context.Context, id string) error {
	// Images go first, inside the same transaction, so a service is never
	// removed while its attachments remain reachable.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("service_id = ?", id).Delete(&models.ServiceImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", id).Error
	})
	return translateGormError(err)
}
