package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/abhisek/fastmath/internal/config"
)

// LoadConfig reads the stored config, returning defaults when no row
// exists or the stored JSON is malformed. A corrupted config never
// blocks startup.
func (s *Store) LoadConfig(ctx context.Context) (*config.Config, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM config WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{}
	if err := json.Unmarshal([]byte(data), cfg); err != nil {
		return config.Default(), nil
	}
	cfg.Normalize()
	return cfg, nil
}

// SaveConfig writes the config as a single JSON row, replacing any
// previous value.
func (s *Store) SaveConfig(cfg *config.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO config (id, data) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
		string(data),
	)
	return err
}
