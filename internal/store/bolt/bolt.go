// Package bolt persists the progress snapshot in a single-file
// key-value store. It is the default driver: one bucket, one record.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"initiation/internal/store"
)

const progressBucket = "progress"

var _ store.Store = (*Store)(nil)

// Store is a BoltDB-backed snapshot store.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening storage db: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Load fetches the persisted snapshot, or (nil, nil) when none exists.
func (s *Store) Load(ctx context.Context) (*store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snapshot *store.Snapshot
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(progressBucket))
		if bucket == nil {
			return fmt.Errorf("progress bucket is missing")
		}
		payload := bucket.Get([]byte(store.ProgressKey))
		if payload == nil {
			return nil
		}
		loaded := &store.Snapshot{}
		if err := json.Unmarshal(payload, loaded); err != nil {
			return fmt.Errorf("%w: %v", store.ErrCorrupt, err)
		}
		snapshot = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Save writes the snapshot under the fixed progress key.
func (s *Store) Save(ctx context.Context, snapshot *store.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("snapshot is required")
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(progressBucket))
		if bucket == nil {
			return fmt.Errorf("progress bucket is missing")
		}
		return bucket.Put([]byte(store.ProgressKey), payload)
	})
}

// Close closes the underlying database.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(progressBucket)); err != nil {
			return fmt.Errorf("creating progress bucket: %w", err)
		}
		return nil
	})
}
