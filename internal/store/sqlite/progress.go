package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"initiation/internal/store"
)

// Load fetches the persisted snapshot, or (nil, nil) when none exists.
func (c *Client) Load(ctx context.Context) (*store.Snapshot, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT payload FROM progress WHERE key = ?`, store.ProgressKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	snapshot := &store.Snapshot{}
	if err := json.Unmarshal([]byte(payload), snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCorrupt, err)
	}
	return snapshot, nil
}

// Save upserts the snapshot under the fixed progress key.
func (c *Client) Save(ctx context.Context, snapshot *store.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is required")
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
	INSERT INTO progress (key, payload, updated_at)
	VALUES (?, ?, datetime('now'))
	ON CONFLICT (key) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at
	`, store.ProgressKey, string(payload))
	if err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}
