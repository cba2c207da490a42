// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config is the CLI configuration, loadable from a JSON file with
// environment variables filling in gaps. All fields are optional;
// missing values use defaults or come from CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume PDF
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// AI provider
	Provider string `json:"provider,omitempty" validate:"omitempty,oneof=gemini groq"`
	APIKey   string `json:"api_key,omitempty"`

	// Output
	Output   string `json:"output,omitempty"`    // CSV export path
	CloudOut string `json:"cloud_out,omitempty"` // Word cloud PNG path
	MaxWords int    `json:"max_words,omitempty" validate:"gte=0"`

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"` // Headless browser fallback for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL history store
	HistorySize int    `json:"history_size,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a config from environment variables. godotenv in the
// CLI loads .env into the environment before this runs.
func FromEnv() Config {
	return Config{
		Provider:    os.Getenv("AI_PROVIDER"),
		APIKey:      firstNonEmpty(os.Getenv("GEMINI_API_KEY"), os.Getenv("GROQ_API_KEY")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UseBrowser:  envBool("USE_BROWSER"),
		Verbose:     envBool("VERBOSE"),
	}
}

// Validate checks field values via struct tags plus the cross-field
// rules tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config error: field %s failed %q validation", f.Field(), f.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// Merge returns a new Config with empty fields filled from defaults.
// Used to let a config file supply defaults for flags and env values.
func (c *Config) Merge(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CloudOut == "" {
		result.CloudOut = defaults.CloudOut
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxWords == 0 {
		result.MaxWords = defaults.MaxWords
	}
	if result.HistorySize == 0 {
		result.HistorySize = defaults.HistorySize
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
