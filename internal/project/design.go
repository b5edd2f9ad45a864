// Package project persists designs, catalogs, machine profiles, templates,
// and application configuration as JSON files under the user's config
// directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// ConfigDir returns the directory for application data files.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bitcarousel"), nil
}

// SaveDesign writes a design to the given path as indented JSON. The write
// is atomic: the data goes to a temp file in the same directory which is
// then renamed over the target, so a crash mid-write never truncates an
// existing design file.
func SaveDesign(path string, d model.Design) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create design directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal design: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".design-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write design: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace design file: %w", err)
	}
	return nil
}

// LoadDesign reads a design from the given path.
func LoadDesign(path string) (model.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("failed to read design file: %w", err)
	}
	var d model.Design
	if err := json.Unmarshal(data, &d); err != nil {
		return model.Design{}, fmt.Errorf("failed to parse design file: %w", err)
	}
	if d.MaxRadius <= 0 {
		d.MaxRadius = model.DefaultMaxRadius
	}
	return d, nil
}
