package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/dusk/internal/application/port"
	"github.com/bnema/dusk/internal/logging"
)

const (
	selectPreference = `SELECT value FROM preferences WHERE key = ?`
	upsertPreference = `INSERT INTO preferences (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type preferenceRepo struct {
	provider port.DatabaseProvider
}

// NewPreferenceStore creates a SQLite-backed preference store. The database
// is opened through provider on first use.
func NewPreferenceStore(provider port.DatabaseProvider) port.PreferenceStore {
	return &preferenceRepo{provider: provider}
}

func (r *preferenceRepo) Load(ctx context.Context, key string) (string, bool, error) {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, selectPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load preference %q: %w", key, err)
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("preference loaded")
	return value, true, nil
}

func (r *preferenceRepo) Save(ctx context.Context, key, value string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, upsertPreference, key, value); err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}

	logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("preference saved")
	return nil
}
