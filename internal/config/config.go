// Package config resolves runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/rhythm/internal/timeline"
	"github.com/joho/godotenv"
)

const (
	maxMonthsBack = 12
	maxWeeksBack  = 52
)

// Config holds all runtime settings.
type Config struct {
	DBPath      string
	MonthsBack  int
	WeeksBack   int
	Location    *time.Location
	LogUseCases bool
	// PeakHour pins the user's productive hour. 0 derives it from focus analysis.
	PeakHour int
}

// Default returns a Config with sensible defaults. The database lives under
// the user's home directory.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:     filepath.Join(home, ".rhythm", "rhythm.db"),
		MonthsBack: timeline.DefaultMonthsBack,
		WeeksBack:  timeline.DefaultWeeksBack,
		Location:   time.Local,
	}, nil
}

// Load reads .env from the working directory when present, then applies
// environment overrides on top of Default. Variables already set in the
// environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("RHYTHM_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RHYTHM_MONTHS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxMonthsBack {
			cfg.MonthsBack = n
		}
	}
	if v := os.Getenv("RHYTHM_WEEKS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= maxWeeksBack {
			cfg.WeeksBack = n
		}
	}
	if v := os.Getenv("RHYTHM_TZ"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, fmt.Errorf("RHYTHM_TZ: %w", err)
		}
		cfg.Location = loc
	}
	if v := os.Getenv("RHYTHM_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RHYTHM_PEAK_HOUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 23 {
			cfg.PeakHour = n
		}
	}

	return cfg, nil
}
