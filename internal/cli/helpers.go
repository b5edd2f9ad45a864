package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bitcarousel/bitcarousel/internal/engine"
	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// loadCatalog returns the built-in catalog merged with the user's saved
// entries, and installs any saved custom machine profiles.
func loadCatalog() (model.Catalog, error) {
	path, err := project.DefaultCatalogPath()
	if err != nil {
		return model.BuiltinCatalog(), nil
	}
	catalog, err := project.LoadFullCatalog(path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}

	if profiles, err := project.LoadCustomProfilesFromDefault(); err == nil {
		model.CustomProfiles = profiles
	}
	return catalog, nil
}

// loadDesign reads the design named by --file.
func loadDesign() (model.Design, error) {
	return project.LoadDesign(designFile)
}

// saveDesign writes the design back to --file and records it in the
// recent-designs list. Config bookkeeping failures are not fatal.
func saveDesign(d model.Design) error {
	if err := project.SaveDesign(designFile, d); err != nil {
		return err
	}

	if path, err := project.DefaultConfigPath(); err == nil {
		if cfg, err := project.LoadAppConfig(path); err == nil {
			cfg.RememberDesign(designFile, 10)
			_ = project.SaveAppConfig(path, cfg)
		}
	}
	return nil
}

// newEngine builds the layout engine over the merged catalog.
func newEngine() (*engine.Engine, model.Catalog, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, model.Catalog{}, err
	}
	return engine.New(catalog), catalog, nil
}

// reportEngineError prints a typed engine failure in user terms and returns
// the error unchanged for the exit status.
func reportEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrCapacity):
		printError("No free slot: %v", err)
	case errors.Is(err, engine.ErrInfeasible):
		printError("Does not fit: %v", err)
	case errors.Is(err, engine.ErrInvalidParameter):
		printError("Invalid request: %v", err)
	default:
		printError("%v", err)
	}
	return err
}

// parseRingArg parses a ring index argument.
func parseRingArg(arg string) (int, error) {
	ring, err := strconv.Atoi(arg)
	if err != nil || ring < 0 {
		return 0, fmt.Errorf("invalid ring index %q", arg)
	}
	return ring, nil
}

// parseFloatArg parses a positive float argument such as a radius.
func parseFloatArg(arg, what string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return v, nil
}
