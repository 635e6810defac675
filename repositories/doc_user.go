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

// userDoc is the document shape for users. The model hides Subject from API
// JSON, so the document form spells it out explicitly.
type userDoc struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *userDoc) toModel() *models.User {
	return &models.User{
		ID:        d.ID,
		Subject:   d.Subject,
		Email:     d.Email,
		Name:      d.Name,
		PhotoURL:  d.PhotoURL,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func userToDoc(u *models.User) *userDoc {
	return &userDoc{
		ID:        u.ID,
		Subject:   u.Subject,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type docUserRepository struct {
	ds *docstore.Store
}

func (r *docUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	var doc userDoc
	if err := r.ds.Get(colUsers, id, &doc); err != nil {
		return nil, translateDocError(err)
	}
	return doc.toModel(), nil
}

func (r *docUserRepository) FindBySubject(_ context.Context, subject string) (*models.User, error) {
	var found *userDoc
	err := r.ds.View(func(tx *docstore.Tx) error {
		return findUserBySubject(tx, subject, &found)
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found.toModel(), nil
}

func (r *docUserRepository) List(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.ds.View(func(tx *docstore.Tx) error {
		return tx.ForEach(colUsers, func(_ string, raw []byte) error {
			var doc userDoc
			if err := json.Unmarshal(raw, &doc); err != nil {
				return err
			}
			users = append(users, *doc.toModel())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *docUserRepository) Create(_ context.Context, user *models.User) error {
	// Check-and-put in one write transaction; bbolt serializes writers, so
	// a duplicate subject cannot slip in between the scan and the put.
	return r.ds.Update(func(tx *docstore.Tx) error {
		var existing *userDoc
		if err := findUserBySubject(tx, user.Subject, &existing); err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrConflict
		}
		stampCreate(&user.CreatedAt, &user.UpdatedAt)
		return tx.Put(colUsers, user.ID, userToDoc(user))
	})
}

func (r *docUserRepository) Update(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var doc userDoc
	err := r.ds.Update(func(tx *docstore.Tx) error {
		if err := tx.Get(colUsers, id, &doc); err != nil {
			return err
		}
		if patch.Name != nil {
			doc.Name = patch.Name
		}
		if patch.PhotoURL != nil {
			doc.PhotoURL = patch.PhotoURL
		}
		doc.UpdatedAt = time.Now().UTC()
		return tx.Put(colUsers, id, &doc)
	})
	if err != nil {
		return nil, translateDocError(err)
	}
	return doc.toModel(), nil
}

func findUserBySubject(tx *docstore.Tx, subject string, out **userDoc) error {
	return tx.ForEach(colUsers, func(_ string, raw []byte) error {
		var doc userDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		if doc.Subject == subject {
			*out = &doc
		}
		return nil
	})
}
