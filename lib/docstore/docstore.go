// Package docstore provides the document persistence backend: a bbolt file
// with one bucket per collection, each document stored as JSON under its id.
// Write transactions are serialized by bbolt, which is what makes the
// check-and-set patterns in the repositories atomic.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoDocument is returned when an id does not exist in a collection.
var ErrNoDocument = errors.New("docstore: no such document")

// Store is a handle to the document database. It is safe for concurrent use
// and is opened once at startup.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file and ensures every named
// collection bucket exists.
func Open(path string, collections ...string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("docstore: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range collections {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create collection %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn inside a single write transaction.
func (s *Store) Update(fn func(tx *Tx) error) error {
	return s.db.Update(func(btx *bolt.Tx) error {
		return fn(&Tx{tx: btx})
	})
}

// View runs fn inside a read-only transaction.
func (s *Store) View(fn func(tx *Tx) error) error {
	return s.db.View(func(btx *bolt.Tx) error {
		return fn(&Tx{tx: btx})
	})
}

// Put stores doc under id in a single write transaction.
func (s *Store) Put(collection, id string, doc interface{}) error {
	return s.Update(func(tx *Tx) error {
		return tx.Put(collection, id, doc)
	})
}

// Get loads the document with the given id into out.
func (s *Store) Get(collection, id string, out interface{}) error {
	return s.View(func(tx *Tx) error {
		return tx.Get(collection, id, out)
	})
}

// Delete removes the document with the given id.
func (s *Store) Delete(collection, id string) error {
	return s.Update(func(tx *Tx) error {
		return tx.Delete(collection, id)
	})
}

// Tx is a docstore transaction over the underlying bolt transaction.
type Tx struct {
	tx *bolt.Tx
}

func (t *Tx) bucket(collection string) (*bolt.Bucket, error) {
	b := t.tx.Bucket([]byte(collection))
	if b == nil {
		return nil, fmt.Errorf("docstore: unknown collection %q", collection)
	}
	return b, nil
}

// Put marshals doc and stores it under id.
func (t *Tx) Put(collection, id string, doc interface{}) error {
	b, err := t.bucket(collection)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("docstore: marshal %s/%s: %w", collection, id, err)
	}
	return b.Put([]byte(id), raw)
}

// Get unmarshals the document stored under id into out.
func (t *Tx) Get(collection, id string, out interface{}) error {
	b, err := t.bucket(collection)
	if err != nil {
		return err
	}
	raw := b.Get([]byte(id))
	if raw == nil {
		return ErrNoDocument
	}
	return json.Unmarshal(raw, out)
}

// Delete removes the document stored under id. Deleting a missing id
// returns ErrNoDocument.
func (t *Tx) Delete(collection, id string) error {
	b, err := t.bucket(collection)
	if err != nil {
		return err
	}
	if b.Get([]byte(id)) == nil {
		return ErrNoDocument
	}
	return b.Delete([]byte(id))
}

// ForEach scans every document in the collection. fn receives the raw JSON;
// returning a non-nil error stops the scan.
func (t *Tx) ForEach(collection string, fn func(id string, raw []byte) error) error {
	b, err := t.bucket(collection)
	if err != nil {
		return err
	}
	return b.ForEach(func(k, v []byte) error {
		return fn(string(k), v)
	})
}
