package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// DefaultCatalogPath returns the default file path for user catalog entries.
func DefaultCatalogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.json"), nil
}

// SaveUserCatalog writes user-defined catalog entries to a JSON file.
// Only user entries are saved; built-in entries live in the binary.
func SaveUserCatalog(path string, c model.Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadUserCatalog reads user-defined catalog entries from a JSON file.
// Returns an empty catalog if the file does not exist.
func LoadUserCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Catalog{}, nil
		}
		return model.Catalog{}, err
	}
	var c model.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// LoadFullCatalog returns the built-in catalog merged with the user entries
// from the given path. User entries never override built-in keys.
func LoadFullCatalog(path string) (model.Catalog, error) {
	c := model.BuiltinCatalog()
	user, err := LoadUserCatalog(path)
	if err != nil {
		return c, err
	}
	c.Merge(user)
	return c, nil
}
