package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"namada_governance_bot/internal/db/models"
)

type fileStateRepository struct {
	path string
}

// NewFileStateRepository keeps the state in a single JSON file. It is used
// when no database is configured.
func NewFileStateRepository(path string) (StateRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &fileStateRepository{path: path}, nil
}

func (r *fileStateRepository) Load() (*models.State, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &models.State{}, nil
	} else if err != nil {
		return nil, err
	}

	state := &models.State{}
	if err = json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to decode state file %s: %w", r.path, err)
	}

	return state, nil
}

// Save replaces the state file atomically: the new state is written next to
// it and renamed over the old one.
func (r *fileStateRepository) Save(state *models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}
