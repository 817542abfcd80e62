package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPresets_Builtins(t *testing.T) {
	presets, err := LoadPresets("")
	require.NoError(t, err)

	for _, name := range []string{"iso", "doy", "gps", "mjd", "sinex"} {
		p, ok := presets[name]
		require.True(t, ok, "builtin preset %q missing", name)
		assert.NotEmpty(t, p.Template)
	}
}

func TestLoadPresets_FileOverridesBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `presets:
  - name: iso
    template: "[YYYY][MM][DD]"
  - name: custom
    template: "[MJD3]"
    description: compact day
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)

	assert.Equal(t, "[YYYY][MM][DD]", presets["iso"].Template)
	assert.Equal(t, "[MJD3]", presets["custom"].Template)
	assert.Equal(t, "compact day", presets["custom"].Description)

	// Untouched builtins survive.
	assert.Equal(t, "[MJD5]", presets["mjd"].Template)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading templates file")
}

func TestLoadPresets_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: [not, a, preset"), 0o644))

	_, err := LoadPresets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing templates file")
}

func TestLoadPresets_IncompletePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `presets:
  - name: broken
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadPresets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a name and a template")
}
