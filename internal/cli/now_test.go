package cli

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowCommand_MJD(t *testing.T) {
	out, err := executeCommand(t, "now", "--to", "mjd")
	require.NoError(t, err)

	mjd, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)

	// 2020-01-01 is MJD 58849; anything running this test is later.
	assert.Greater(t, mjd, 58849.0)
}

func TestNowCommand_Calendar(t *testing.T) {
	out, err := executeCommand(t, "now")
	require.NoError(t, err)

	fields := strings.Fields(out)
	require.Len(t, fields, 6)

	year, err := strconv.ParseFloat(fields[0], 64)
	require.NoError(t, err)
	assert.InDelta(t, float64(time.Now().UTC().Year()), year, 1)
}

func TestNowCommand_Template(t *testing.T) {
	out, err := executeCommand(t, "now", "--template", "[YYYY]-[DDD]")
	require.NoError(t, err)

	parts := strings.Split(strings.TrimSpace(out), "-")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 4)
	assert.Len(t, parts[1], 3)
}

func TestNowCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "now", "--to", "gps")
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"to":"gps"`)
}

func TestNowCommand_UnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "now", "--to", "tai")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
