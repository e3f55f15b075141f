package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"

	"github.com/alem-hub/school-tools/pkg/logger"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Logging
	Log LogConfig

	// Student tracker
	Tracker TrackerConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level     string // debug, info, warn, error
	Format    string // text, json
	AddCaller bool
}

// TrackerConfig holds student tracker settings.
type TrackerConfig struct {
	// Path to the subjects file, used when --subjects is not given.
	SubjectsFile string

	// Field delimiter of the subjects file.
	SubjectsDelimiter rune
}

// Load reads an optional .env file and then builds the configuration
// from environment variables. Variables already set in the environment
// take precedence over the file.
func Load(appName string, envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("dotenv: %w", err)
	}

	cfg := &Config{
		App: loadAppConfig(appName),
		Log: loadLogConfig(),
	}

	var err error
	cfg.Tracker, err = loadTrackerConfig()
	if err != nil {
		return nil, fmt.Errorf("tracker config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the given files (".env" when none). Missing files are
// not an error.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}

func loadAppConfig(appName string) AppConfig {
	env := Environment(getEnv("APP_ENV", string(EnvProduction)))

	return AppConfig{
		Name:        getEnv("APP_NAME", appName),
		Environment: env,
		Debug:       env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
	}
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:     getEnv("LOG_LEVEL", "info"),
		Format:    getEnv("LOG_FORMAT", "text"),
		AddCaller: getEnvBool("LOG_CALLER", false),
	}
}

func loadTrackerConfig() (TrackerConfig, error) {
	delim, err := getEnvRune("SUBJECTS_DELIMITER", ',')
	if err != nil {
		return TrackerConfig{}, err
	}

	return TrackerConfig{
		SubjectsFile:      getEnv("SUBJECTS_FILE", "subjects.csv"),
		SubjectsDelimiter: delim,
	}, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, "LOG_FORMAT must be text or json")
	}

	switch c.Tracker.SubjectsDelimiter {
	case '\r', '\n', '"', utf8.RuneError:
		errs = append(errs, "SUBJECTS_DELIMITER must be a single printable character")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// NewLogger builds the process-wide logger described by the configuration.
func (c *Config) NewLogger() *logger.Logger {
	level := logger.ParseLevel(c.Log.Level)
	if c.App.Debug && level > logger.LevelDebug {
		level = logger.LevelDebug
	}

	return logger.New(logger.Options{
		Output:    os.Stderr,
		Name:      c.App.Name,
		Format:    logger.ParseFormat(c.Log.Format),
		Level:     level,
		AddCaller: c.Log.AddCaller,
	})
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvRune(key string, defaultVal rune) (rune, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	if val == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(val) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", key, val)
	}
	r, _ := utf8.DecodeRuneInString(val)
	return r, nil
}
