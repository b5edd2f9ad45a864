package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitcarousel/bitcarousel/internal/model"
)

func TestSaveAndLoadDesign(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stand.json")

	d := model.NewDesign("my stand")
	d.Center = "handpiece-22"
	d.Rings = append(d.Rings, model.Ring{Radius: 20, Divisions: 12})
	d.Items = append(d.Items, model.PlacedItem{ID: "a", ItemType: "bit-3.2", Radius: 20, Angle: 30, Ring: 0})

	if err := SaveDesign(path, d); err != nil {
		t.Fatalf("SaveDesign failed: %v", err)
	}

	loaded, err := LoadDesign(path)
	if err != nil {
		t.Fatalf("LoadDesign failed: %v", err)
	}
	if loaded.Name != "my stand" || loaded.Center != "handpiece-22" {
		t.Errorf("loaded design header mismatch: %+v", loaded)
	}
	if len(loaded.Rings) != 1 || loaded.Rings[0].Divisions != 12 {
		t.Errorf("loaded rings mismatch: %+v", loaded.Rings)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Angle != 30 {
		t.Errorf("loaded items mismatch: %+v", loaded.Items)
	}
}

func TestSaveDesignReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stand.json")

	if err := SaveDesign(path, model.NewDesign("v1")); err != nil {
		t.Fatal(err)
	}
	if err := SaveDesign(path, model.NewDesign("v2")); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadDesign(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "v2" {
		t.Errorf("expected replaced design, got %q", loaded.Name)
	}

	// No temp files may survive a successful save.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the design file in the directory, found %d entries", len(entries))
	}
}

func TestLoadDesignDefaultsMaxRadius(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	if err := os.WriteFile(path, []byte(`{"name":"legacy"}`), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadDesign(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.MaxRadius != model.DefaultMaxRadius {
		t.Errorf("missing max radius should default, got %v", loaded.MaxRadius)
	}
}

func TestLoadDesignMissingFile(t *testing.T) {
	if _, err := LoadDesign(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing design file")
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultToolDiameter = 3.175
	cfg.DefaultDivisions = 12
	cfg.RecentDesigns = []string{"/tmp/a.json", "/tmp/b.json"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.DefaultToolDiameter != 3.175 {
		t.Errorf("expected DefaultToolDiameter=3.175, got %f", loaded.DefaultToolDiameter)
	}
	if loaded.DefaultDivisions != 12 {
		t.Errorf("expected DefaultDivisions=12, got %d", loaded.DefaultDivisions)
	}
	if len(loaded.RecentDesigns) != 2 {
		t.Errorf("expected 2 recent designs, got %d", len(loaded.RecentDesigns))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	defaults := model.DefaultAppConfig()
	if cfg.DefaultProfile != defaults.DefaultProfile {
		t.Errorf("expected default profile %q, got %q", defaults.DefaultProfile, cfg.DefaultProfile)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigNilRecentDesigns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_profile":"Grbl"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RecentDesigns == nil {
		t.Error("RecentDesigns must never be nil after load")
	}
}

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	profiles := []model.MachineProfile{
		{Name: "MyRouter", Description: "Shop router", RapidMove: "G0", FeedMove: "G1", IsBuiltIn: true},
	}
	if err := SaveCustomProfiles(path, profiles); err != nil {
		t.Fatalf("SaveCustomProfiles failed: %v", err)
	}

	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "MyRouter" {
		t.Errorf("unexpected profiles: %+v", loaded)
	}
	if loaded[0].IsBuiltIn {
		t.Error("loaded profiles must never be marked built-in")
	}
}

func TestLoadCustomProfilesMissingFile(t *testing.T) {
	loaded, err := LoadCustomProfiles(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice, got %d profiles", len(loaded))
	}
}

func TestExportImportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	p := model.NewCustomProfile("Shared")
	if err := ExportProfile(path, p); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if imported.Name != "Shared" || imported.IsBuiltIn {
		t.Errorf("unexpected imported profile: %+v", imported)
	}
}

func TestImportProfileRejectsUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"description":"no name"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportProfile(path); err == nil {
		t.Error("expected error for a profile without a name")
	}
}

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	d := model.NewDesign("source")
	d.Rings = append(d.Rings, model.Ring{Radius: 10})

	store := model.NewTemplateStore()
	store.Add(model.NewDesignTemplate("Starter", "Basic layout", d))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates failed: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates failed: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "Starter" {
		t.Errorf("unexpected template: %+v", loaded.Templates[0])
	}
	if len(loaded.Templates[0].Design.Rings) != 1 {
		t.Error("template design did not round-trip")
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	loaded, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if loaded.Templates == nil {
		t.Error("Templates must never be nil after load")
	}
}

func TestSaveAndLoadUserCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	c := model.Catalog{Items: []model.ItemSpec{
		{Key: "my-bit", Label: "Custom bit", Shape: model.ShapeCircle, Length: 2.5, Diameter: 2.5},
	}}
	if err := SaveUserCatalog(path, c); err != nil {
		t.Fatalf("SaveUserCatalog failed: %v", err)
	}

	loaded, err := LoadUserCatalog(path)
	if err != nil {
		t.Fatalf("LoadUserCatalog failed: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Key != "my-bit" {
		t.Errorf("unexpected catalog: %+v", loaded)
	}
}

func TestLoadFullCatalogMergesUserEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	user := model.Catalog{Items: []model.ItemSpec{
		{Key: "my-bit", Label: "Custom bit", Shape: model.ShapeCircle, Length: 2.5, Diameter: 2.5},
		// Colliding key must not override the built-in entry.
		{Key: "bit-3.2", Label: "Hijacked", Shape: model.ShapeCircle, Length: 99, Diameter: 99},
	}}
	if err := SaveUserCatalog(path, user); err != nil {
		t.Fatal(err)
	}

	full, err := LoadFullCatalog(path)
	if err != nil {
		t.Fatalf("LoadFullCatalog failed: %v", err)
	}
	if _, ok := full.Find("my-bit"); !ok {
		t.Error("user entry missing from merged catalog")
	}
	builtin, ok := full.Find("bit-3.2")
	if !ok {
		t.Fatal("built-in entry missing from merged catalog")
	}
	if builtin.Label == "Hijacked" {
		t.Error("user entry must not override a built-in key")
	}
}

func TestLoadFullCatalogMissingFile(t *testing.T) {
	full, err := LoadFullCatalog(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(full.Items) == 0 {
		t.Error("expected built-in catalog entries")
	}
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "all.json")

	backup := BackupData{
		Config: model.DefaultAppConfig(),
		Catalog: model.Catalog{Items: []model.ItemSpec{
			{Key: "my-bit", Label: "Custom bit", Shape: model.ShapeCircle, Length: 2.5, Diameter: 2.5},
		}},
		Profiles:  []model.MachineProfile{model.NewCustomProfile("Backup profile")},
		Templates: model.NewTemplateStore(),
	}
	if err := ExportAllData(path, backup); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	imported, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if imported.Version == "" || imported.CreatedAt == "" {
		t.Error("backup must stamp version and timestamp")
	}
	if len(imported.Catalog.Items) != 1 || len(imported.Profiles) != 1 {
		t.Errorf("backup payload did not round-trip: %+v", imported)
	}
}

func TestImportAllDataRejectsUnversioned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for a backup without a version field")
	}
}
