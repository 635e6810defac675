package repositories

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/firmdir-simple/lib/docstore"
	"github.com/firmdir-simple/models"
)

type docServiceImageRepository struct {
	ds *docstore.Store
}

func (r *docServiceImageRepository) FindByID(_ context.Context, id string) (*models.ServiceImage, error) {
	var image models.ServiceImage
	if err := r.ds.Get(colServiceImages, id, &image); err != nil {
		return nil, translateDocError(err)
	}
	return &image, nil
}

func (r *docServiceImageRepository) ListByService(_ context.Context, serviceID string) ([]models.ServiceImage, error) {
	images := make([]models.ServiceImage, 0)
	err := r.ds.View(func(tx *docstore.Tx) error {
		return tx.ForEach(colServiceImages, func(_ string, raw []byte) error {
			var image models.ServiceImage
			if err := json.Unmarshal(raw, &image); err != nil {
				return err
			}
			if image.ServiceID == serviceID {
				images = append(images, image)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].CreatedAt.Before(images[j].CreatedAt)
	})
	return images, nil
}

func (r *docServiceImageRepository) Create(_ context.Context, image *models.ServiceImage) error {
	stampCreate(&image.CreatedAt, &image.UpdatedAt)
	return r.ds.Put(colServiceImages, image.ID, image)
}

func (r *docServiceImageRepository) Delete(_ context.Context, id string) error {
	return translateDocError(r.ds.Delete(colServiceImages, id))
}
