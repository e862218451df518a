package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rhythmVars = []string{
	"RHYTHM_DB", "RHYTHM_MONTHS_BACK", "RHYTHM_WEEKS_BACK",
	"RHYTHM_TZ", "RHYTHM_LOG_USE_CASES", "RHYTHM_PEAK_HOUR",
}

// clearEnv blanks every RHYTHM_ variable for the test; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range rhythmVars {
		t.Setenv(v, "")
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/tester", ".rhythm", "rhythm.db"), cfg.DBPath)
	assert.Equal(t, 3, cfg.MonthsBack)
	assert.Equal(t, 6, cfg.WeeksBack)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, 0, cfg.PeakHour)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RHYTHM_DB", "/tmp/r.db")
	t.Setenv("RHYTHM_MONTHS_BACK", "6")
	t.Setenv("RHYTHM_WEEKS_BACK", "10")
	t.Setenv("RHYTHM_TZ", "UTC")
	t.Setenv("RHYTHM_LOG_USE_CASES", "true")
	t.Setenv("RHYTHM_PEAK_HOUR", "14")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, 6, cfg.MonthsBack)
	assert.Equal(t, 10, cfg.WeeksBack)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 14, cfg.PeakHour)
}

func TestLoad_OutOfRangeValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("RHYTHM_MONTHS_BACK", "13")
	t.Setenv("RHYTHM_WEEKS_BACK", "zero")
	t.Setenv("RHYTHM_PEAK_HOUR", "24")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.MonthsBack)
	assert.Equal(t, 6, cfg.WeeksBack)
	assert.Equal(t, 0, cfg.PeakHour)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("RHYTHM_TZ", "Mars/Olympus_Mons")

	_, err := Load(noEnvFile(t))
	assert.ErrorContains(t, err, "RHYTHM_TZ")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("RHYTHM_WEEKS_BACK", "4")
	// godotenv only fills variables that are absent, not ones set to "".
	require.NoError(t, os.Unsetenv("RHYTHM_MONTHS_BACK"))
	require.NoError(t, os.Unsetenv("RHYTHM_PEAK_HOUR"))
	t.Cleanup(func() {
		os.Unsetenv("RHYTHM_MONTHS_BACK")
		os.Unsetenv("RHYTHM_PEAK_HOUR")
	})

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RHYTHM_MONTHS_BACK=5\nRHYTHM_PEAK_HOUR=7\nRHYTHM_WEEKS_BACK=9\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MonthsBack)
	assert.Equal(t, 7, cfg.PeakHour)
	assert.Equal(t, 4, cfg.WeeksBack, "process env wins over .env")
}
