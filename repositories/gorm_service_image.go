package repositories

import (
	"context"

	"github.com/firmdir-simple/apperrors"
	"github.com/firmdir-simple/models"
	"gorm.io/gorm"
)

type gormServiceImageRepository struct {
	db *gorm.DB
}

func (r *gormServiceImageRepository) FindByID(ctx context.Context, id string) (*models.ServiceImage, error) {
	var image models.ServiceImage
	result := r.db.WithContext(ctx).First(&image, "id = ?", id)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &image, nil
}

func (r *gormServiceImageRepository) ListByService(ctx context.Context, serviceID string) ([]models.ServiceImage, error) {
	var images []models.ServiceImage
	result := r.db.WithContext(ctx).Where("service_id = ?", serviceID).Order("created_at").Find(&images)
	return images, translateGormError(result.Error)
}

func (r *gormServiceImageRepository) Create(ctx context.Context, image *models.ServiceImage) error {
	return translateGormError(r.db.WithContext(ctx).Create(image).Error)
}

func (r *gormServiceImageRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceImage{}, "id = ?", id)
	if result.Error != nil {
		return translateGormError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
