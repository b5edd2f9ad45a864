package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

// DefaultProfilesPath returns the default file path for custom machine profiles.
func DefaultProfilesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profiles.json"), nil
}

// SaveCustomProfiles saves custom machine profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.MachineProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom machine profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.MachineProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.MachineProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.MachineProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// SaveCustomProfilesToDefault saves custom profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.MachineProfile) error {
	path, err := DefaultProfilesPath()
	if err != nil {
		return err
	}
	return SaveCustomProfiles(path, profiles)
}

// LoadCustomProfilesFromDefault loads custom profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.MachineProfile, error) {
	path, err := DefaultProfilesPath()
	if err != nil {
		return nil, err
	}
	return LoadCustomProfiles(path)
}

// ExportProfile exports a single profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.MachineProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single profile from a JSON file.
func ImportProfile(path string) (model.MachineProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.MachineProfile{}, err
	}

	var profile model.MachineProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.MachineProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.MachineProfile{}, errors.New("imported profile has no name")
	}
	return profile, nil
}
