// Package store persists the entry list. The whole list lives under a
// single namespaced slot: a flat JSON array, no schema versioning, rewritten
// in full on every save.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/financify-dev/financify/internal/model"
)

var (
	bucketName = []byte("financify")
	entriesKey = []byte("transactions")
)

// Bolt is a bbolt-backed store. One file, one bucket, one key.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening data file %s: %w", path, err)
	}
	return &Bolt{db: db}, nil
}

// Load returns the persisted entry list. found is false when the slot has
// never been written, which callers use to seed first-run data.
func (s *Bolt) Load() ([]model.Entry, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		if v := b.Get(entriesKey); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("reading entries: %w", err)
	}
	if data == nil {
		return nil, false, nil
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("decoding entries: %w", err)
	}
	return entries, true, nil
}

// Save replaces the persisted entry list.
func (s *Bolt) Save(entries []model.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(entriesKey, data)
	})
	if err != nil {
		return fmt.Errorf("writing entries: %w", err)
	}
	return nil
}

// Close closes the underlying database file.
func (s *Bolt) Close() error {
	return s.db.Close()
}
