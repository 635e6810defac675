package repositories

import (
	"context"

	"github.com/firmdir-simple/models"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindBySubject(ctx context.Context, subject string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "subject = ?", subject)
	if result.Error != nil {
		return nil, translateGormError(result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).Order("created_at").Find(&users)
	return users, translateGormError(result.Error)
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	return translateGormError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *gormUserRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		if patch.Name != nil {
			user.Name = patch.Name
		}
		if patch.PhotoURL != nil {
			user.PhotoURL = patch.PhotoURL
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, translateGormError(err)
	}
	return &user, nil
}
