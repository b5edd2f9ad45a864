package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitcarousel/bitcarousel/internal/model"
	"github.com/bitcarousel/bitcarousel/internal/project"
)

// setupTestDesign points the CLI at a design file in a temp directory and
// isolates the config dir so tests never touch the user's real state.
func setupTestDesign(t *testing.T, d model.Design) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	orig := designFile
	designFile = filepath.Join(tmp, "stand.json")
	t.Cleanup(func() { designFile = orig })

	require.NoError(t, project.SaveDesign(designFile, d))
	return designFile
}

func TestPlacePartialBatchSucceeds(t *testing.T) {
	d := model.NewDesign("test")
	d.Rings = append(d.Rings, model.Ring{Radius: 20, Divisions: 2})
	path := setupTestDesign(t, d)

	// Three requested, two slots: the batch stops at capacity but the two
	// committed placements are saved and the command exits successfully.
	cmd := newPlaceCmd()
	cmd.SetArgs([]string{"drill-1", "0", "--count", "3"})
	require.NoError(t, cmd.Execute())

	saved, err := project.LoadDesign(path)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 2)
}

func TestPlaceFailingFirstPlacementReturnsError(t *testing.T) {
	d := model.NewDesign("test") // no rings
	path := setupTestDesign(t, d)

	cmd := newPlaceCmd()
	cmd.SetArgs([]string{"drill-1", "0"})
	assert.Error(t, cmd.Execute())

	saved, err := project.LoadDesign(path)
	require.NoError(t, err)
	assert.Empty(t, saved.Items)
}
