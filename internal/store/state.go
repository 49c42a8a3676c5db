package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dvrst/weekender/internal/model"
)

// StorageKey is the fixed key the whole planner aggregate is persisted
// under. One blob, one row.
const StorageKey = "weekend-planner-storage"

// StateStore persists the planner aggregate as a single versioned JSON blob.
type StateStore struct {
	db *sql.DB
}

func NewStateStore(db *sql.DB) *StateStore {
	return &StateStore{db: db}
}

// Save upserts the serialized state under the storage key.
func (s *StateStore) Save(state model.State) error {
	state.Version = model.StateVersion
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO planner_state (key, version, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET version = excluded.version, data = excluded.data, updated_at = excluded.updated_at`,
		StorageKey, state.Version, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Load reads the persisted state. Returns (nil, nil) when nothing has been
// saved yet. A blob with an unknown version or malformed JSON is an error;
// the caller decides whether to refuse startup or reseed.
func (s *StateStore) Load() (*model.State, error) {
	var version int
	var data string
	err := s.db.QueryRow(
		`SELECT version, data FROM planner_state WHERE key = ?`, StorageKey,
	).Scan(&version, &data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	if version != model.StateVersion {
		return nil, fmt.Errorf("unsupported state version %d (want %d)", version, model.StateVersion)
	}

	var state model.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}
