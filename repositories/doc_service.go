package repositories

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/firmdir-simple/lib/docstore"
	"github.com/firmdir-simple/models"
)

type docServiceRepository struct {
	ds *docstore.Store
}

func (r *docServiceRepository) FindByID(_ context.Context, id string) (*models.Service, error) {
	var service models.Service
	if err := r.ds.Get(colServices, id, &service); err != nil {
		return nil, translateDocError(err)
	}
	return &service, nil
}

func (r *docServiceRepository) ListByCompany(_ context.Context, companyID string) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := r.ds.View(func(tx *docstore.Tx) error {
		return tx.ForEach(colServices, func(_ string, raw []byte) error {
			var service models.Service
			if err := json.Unmarshal(raw, &service); err != nil {
				return err
			}
			if service.CompanyID == companyID {
				services = append(services, service)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})
	return services, nil
}

func (r *docServiceRepository) Create(_ context.Context, service *models.Service) error {
	stampCreate(&service.CreatedAt, &service.UpdatedAt)
	return r.ds.Put(colServices, service.ID, service)
}

func (r *docServiceRepository) Update(_ context.Context, id string, patch models.ServicePatch) (*models.Service, error) {
	var service models.Service
	err := r.ds.Update(func(tx *docstore.Tx) error {
		if err := tx.Get(colServices, id, &service); err != nil {
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
		service.UpdatedAt = time.Now().UTC()
		return tx.Put(colServices, id, &service)
	})
	if err != nil {
		return nil, translateDocError(err)
	}
	return &service, nil
}

func (r *docServiceRepository) Delete(_ context.Context, id string) error {
	// Images and the service go in one write transaction so the cascade is
	// all-or-nothing, matching the relational backend.
	err := r.ds.Update(func(tx *docstore.Tx) error {
		var service models.Service
		if err := tx.Get(colServices, id, &service); err != nil {
			return err
		}
		imageIDs := make([]string, 0)
		err := tx.ForEach(colServiceImages, func(imageID string, raw []byte) error {
			var image models.ServiceImage
			if err := json.Unmarshal(raw, &image); err != nil {
				return err
			}
			if image.ServiceID == id {
				imageIDs = append(imageIDs, imageID)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, imageID := range imageIDs {
			if err := tx.Delete(colServiceImages, imageID); err != nil {
				return err
			}
		}
		return tx.Delete(colServices, id)
	})
	return translateDocError(err)
}
