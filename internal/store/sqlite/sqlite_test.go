package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"initiation/internal/store"
)

func openTestClient(t *testing.T) *Client {
	t.Helper()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "progress.db")
	c, err := New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func TestLoadMissing(t *testing.T) {
	c := openTestClient(t)
	snapshot, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snapshot != nil {
		t.Fatalf("expected nil snapshot, got %+v", snapshot)
	}
}

func TestRoundTrip(t *testing.T) {
	c := openTestClient(t)
	ctx := context.Background()

	original := store.NewSnapshot()
	original.CurrentGate = 6
	original.CompletedGates = []int{1, 2, 3, 4, 5}
	original.Attempts[store.GateKey(5)] = []store.Attempt{
		{Attempt: "WRONG", Correct: false, Timestamp: time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)},
		{Attempt: "CORRECT", Correct: true, Timestamp: time.Date(2024, 3, 9, 12, 5, 0, 0, time.UTC)},
	}

	if err := c.Save(ctx, original); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loaded, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("expected lossless round-trip, got %+v", loaded)
	}
}

func TestSaveUpserts(t *testing.T) {
	c := openTestClient(t)
	ctx := context.Background()

	first := store.NewSnapshot()
	if err := c.Save(ctx, first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second := store.NewSnapshot()
	second.GameComplete = true
	second.CurrentGate = 10
	if err := c.Save(ctx, second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var count int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM progress`).Scan(&count); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row, got %d", count)
	}

	loaded, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !loaded.GameComplete {
		t.Fatalf("expected latest snapshot")
	}
}

func TestSaveNil(t *testing.T) {
	c := openTestClient(t)
	if err := c.Save(context.Background(), nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadCorrupt(t *testing.T) {
	c := openTestClient(t)
	ctx := context.Background()

	if err := c.Save(ctx, store.NewSnapshot()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := c.db.ExecContext(ctx, `UPDATE progress SET payload = '{broken'`); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err := c.Load(ctx)
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestParseDSN(t *testing.T) {
	cases := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{"memory", "sqlite://:memory:", ":memory:", false},
		{"relative path", "sqlite://progress.db", "./progress.db", false},
		{"explicit relative", "sqlite://./progress.db", "./progress.db", false},
		{"absolute path", "sqlite:///tmp/progress.db", "/tmp/progress.db", false},
		{"with query", "sqlite://progress.db?cache=shared", "./progress.db?cache=shared", false},
		{"wrong scheme", "bolt://progress.db", "", true},
		{"no scheme", "progress.db", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDSN(tc.dsn)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("parseDSN(%q) = %q, want %q", tc.dsn, got, tc.want)
			}
		})
	}
}
