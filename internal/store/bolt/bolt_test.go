package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.etcd.io/bbolt"

	"initiation/internal/store"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestOpen(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		if _, err := Open("  "); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	snapshot, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snapshot != nil {
		t.Fatalf("expected nil snapshot, got %+v", snapshot)
	}
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	original := store.NewSnapshot()
	original.CurrentGate = 3
	original.CompletedGates = []int{1, 2}
	original.AwaitingHost = true
	original.Attempts[store.GateKey(1)] = []store.Attempt{
		{Attempt: "allow", Correct: false, Timestamp: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)},
		{Attempt: "LET", Correct: true, Timestamp: time.Date(2024, 3, 9, 12, 1, 0, 0, time.UTC)},
	}

	if err := s.Save(ctx, original); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("expected lossless round-trip, got %+v", loaded)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := store.NewSnapshot()
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second := store.NewSnapshot()
	second.CurrentGate = 5
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loaded.CurrentGate != 5 {
		t.Fatalf("expected latest snapshot, got gate %d", loaded.CurrentGate)
	}
}

func TestSaveNil(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := openTestStore(t)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(progressBucket)).Put([]byte(store.ProgressKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = s.Load(context.Background())
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Load(ctx); err == nil {
		t.Fatalf("expected error")
	}
	if err := s.Save(ctx, store.NewSnapshot()); err == nil {
		t.Fatalf("expected error")
	}
}
