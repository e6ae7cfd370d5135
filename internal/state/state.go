// Package state persists the picker's granularity and current range between runs.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/osutil"
)

// StateFile is the name of the JSON state file
const StateFile = "state.json"

// ErrYearOutOfRange is returned by Save for ranges that JSON timestamps cannot hold.
var ErrYearOutOfRange = errors.New("only years 0 through 9999 can be saved")

// State is the persisted picker state
type State struct {
	Granularity daterange.Granularity `json:"granularity"`
	Range       daterange.Range       `json:"range"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// GetStatePath returns the path to the state file, creating its directory if needed.
func GetStatePath() (string, error) {
	return osutil.AppFile(StateFile)
}

// Save writes the state atomically (write to temp file, then rename).
func Save(path string, s State) error {
	// Times outside years 0..9999 have no JSON form
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrYearOutOfRange, err)
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

// Load reads the state file.
// Returns nil if the file doesn't exist (nothing picked yet).
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if !s.Granularity.Valid() {
		return nil, fmt.Errorf("state file %s: %w: %q", path, daterange.ErrInvalidGranularity, string(s.Granularity))
	}
	if s.Range.End.Before(s.Range.Start) {
		return nil, fmt.Errorf("state file %s: %w", path, daterange.ErrInvertedRange)
	}
	return &s, nil
}

// Clear removes the state file.
// Returns nil if the file doesn't exist (idempotent operation).
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
