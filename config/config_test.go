package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/school-tools/pkg/logger"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "APP_DEBUG", "LOG_LEVEL", "LOG_FORMAT", "LOG_CALLER", "SUBJECTS_FILE", "SUBJECTS_DELIMITER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("lottery", missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "lottery", cfg.App.Name)
	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "subjects.csv", cfg.Tracker.SubjectsFile)
	assert.Equal(t, ',', cfg.Tracker.SubjectsDelimiter)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SUBJECTS_FILE", "/data/subjects.csv")
	t.Setenv("SUBJECTS_DELIMITER", ";")

	cfg, err := Load("tracker", missingEnvFile(t))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "/data/subjects.csv", cfg.Tracker.SubjectsFile)
	assert.Equal(t, ';', cfg.Tracker.SubjectsDelimiter)

	log := cfg.NewLogger()
	assert.True(t, log.Enabled(logger.LevelDebug))
}

func TestLoad_DotEnvFile(t *testing.T) {
	// t.Setenv restores the variable afterwards; unset it so the file can fill it in.
	t.Setenv("SUBJECTS_FILE", "")
	require.NoError(t, os.Unsetenv("SUBJECTS_FILE"))
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SUBJECTS_FILE=from-dotenv.csv\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load("tracker", path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.csv", cfg.Tracker.SubjectsFile)
	assert.Equal(t, "warn", cfg.Log.Level, "environment wins over .env")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("delimiter", func(t *testing.T) {
		t.Setenv("SUBJECTS_DELIMITER", ";;")
		_, err := Load("tracker", missingEnvFile(t))
		assert.Error(t, err)
	})

	t.Run("log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load("tracker", missingEnvFile(t))
		assert.Error(t, err)
	})
}
