package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand_Template(t *testing.T) {
	out, err := executeCommand(t, "render",
		"--from", "cal", "--template", "[YYYY]-[DDD] [HH]:[MN]:[SS6]",
		"2019", "2", "11", "0", "0", "1e-9")
	require.NoError(t, err)
	assert.Equal(t, "2019-042 00:00:00.000000\n", out)
}

func TestRenderCommand_Preset(t *testing.T) {
	out, err := executeCommand(t, "render",
		"--from", "gps", "--preset", "mjd", "1825", "259200")
	require.NoError(t, err)
	assert.Equal(t, "57022.00000\n", out)
}

func TestRenderCommand_TemplatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	content := `presets:
  - name: stamp
    template: "[WWWW]:[D]"
    description: week and day
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := executeCommand(t, "render",
		"--from", "mjd", "--preset", "stamp", "--templates-file", path, "57022")
	require.NoError(t, err)
	assert.Equal(t, "1825:3\n", out)
}

func TestRenderCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "render",
		"--from", "mjd", "--template", "[MJD0]", "57022")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "ok",
		"data": {"from": "mjd", "template": "[MJD0]", "output": "57022"}
	}`, out)
}

func TestRenderCommand_ListPresets(t *testing.T) {
	out, err := executeCommand(t, "render", "--list-presets")
	require.NoError(t, err)
	assert.Contains(t, out, "iso")
	assert.Contains(t, out, "[YYYY]-[MM]-[DD] [HH]:[MN]:[SS3]")
	assert.Contains(t, out, "sinex")
}

func TestRenderCommand_UnknownPreset(t *testing.T) {
	out, err := executeCommand(t, "render", "--from", "mjd", "--preset", "nope", "57022")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "unknown preset")
}

func TestRenderCommand_NoTemplate(t *testing.T) {
	_, err := executeCommand(t, "render", "--from", "mjd", "57022")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRenderCommand_InvalidField(t *testing.T) {
	out, err := executeCommand(t, "render",
		"--from", "doy", "--preset", "iso", "2015", "366", "0", "0", "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_FIELD")
}
