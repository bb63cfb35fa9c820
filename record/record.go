// Package record captures input event streams so they can be stored and
// replayed, e.g. for debugging a widget library against a recorded session.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/uilab/inputx"
)

// Recording is an identified, replayable sequence of input events in the
// order a backend produced them.
type Recording struct {
	ID        string         `json:"id" yaml:"id"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
	Events    []inputx.Input `json:"events" yaml:"events"`
}

// New creates an empty recording with a fresh ID.
func New() *Recording {
	return &Recording{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the recording invariants:
// - Non-empty ID
// - Every event holds a kind (the zero Input is not a valid event)
func (r *Recording) Validate() error {
	if r.ID == "" {
		return errors.New("recording ID is required")
	}
	for i, e := range r.Events {
		if e.EventID() == "" {
			return fmt.Errorf("event %d has no kind", i)
		}
	}
	return nil
}

// SaveJSON writes the recording to path as JSON.
func (r *Recording) SaveJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadJSON reads and validates a JSON recording from path.
func LoadJSON(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("validation after load: %w", err)
	}
	return &r, nil
}

// SaveYAML writes the recording to path as YAML.
func (r *Recording) SaveYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// LoadYAML reads and validates a YAML recording from path.
func LoadYAML(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var r Recording
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("validation after load: %w", err)
	}
	return &r, nil
}
