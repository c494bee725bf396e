package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for JobHarvester. It is built once at
// process start and handed to the adapters; nothing downstream reads the
// environment.
type Config struct {
	Providers ProvidersConfig
	HTTP      HTTPConfig
	Search    SearchConfig
	Skills    []string // skill vocabulary; empty selects the built-in list
}

// ProvidersConfig holds per-provider settings and credentials.
type ProvidersConfig struct {
	Adzuna  AdzunaConfig
	SerpAPI SerpAPIConfig
}

// AdzunaConfig configures the Adzuna adapter.
type AdzunaConfig struct {
	Enabled bool
	AppID   string // expanded from env var by Load
	AppKey  string // expanded from env var by Load
	Country string // Adzuna country index, e.g. "in", "gb"
	BaseURL string
}

// SerpAPIConfig configures the SerpApi Google Jobs adapter.
type SerpAPIConfig struct {
	Enabled bool
	APIKey  string // expanded from env var by Load
	BaseURL string
}

// HTTPConfig controls the shared provider HTTP client.
type HTTPConfig struct {
	Timeout time.Duration // per-request timeout
}

// SearchConfig holds search defaults; CLI flags override them.
type SearchConfig struct {
	Title          string
	Location       string
	ResultsPerPage int
	MinExperience  int
	Skill          string
	SortByDate     bool
}

const (
	defaultTimeout        = 10 * time.Second
	defaultTitle          = "data scientist"
	defaultLocation       = "India"
	defaultResultsPerPage = 20
	defaultCountry        = "in"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Providers rawProvidersConfig `yaml:"providers"`
	HTTP      rawHTTPConfig      `yaml:"http"`
	Search    rawSearchConfig    `yaml:"search"`
	Skills    []string           `yaml:"skills"`
}

type rawProvidersConfig struct {
	Adzuna  *rawAdzunaConfig  `yaml:"adzuna"`
	SerpAPI *rawSerpAPIConfig `yaml:"serpapi"`
}

// Providers default to enabled, so Enabled is a pointer to tell "false" from "unset".
type rawAdzunaConfig struct {
	Enabled *bool  `yaml:"enabled"`
	AppID   string `yaml:"app_id"`
	AppKey  string `yaml:"app_key"`
	Country string `yaml:"country"`
	BaseURL string `yaml:"base_url"`
}

type rawSerpAPIConfig struct {
	Enabled *bool  `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type rawHTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

type rawSearchConfig struct {
	Title          string `yaml:"title"`
	Location       string `yaml:"location"`
	ResultsPerPage int    `yaml:"results_per_page"`
	MinExperience  int    `yaml:"min_experience"`
	Skill          string `yaml:"skill"`
	SortByDate     *bool  `yaml:"sort_by_date"`
}

// Default returns the configuration used when no config file exists.
// Credentials come from ADZUNA_APP_ID, ADZUNA_APP_KEY and SERPAPI_API_KEY.
func Default() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Adzuna: AdzunaConfig{
				Enabled: true,
				AppID:   os.Getenv("ADZUNA_APP_ID"),
				AppKey:  os.Getenv("ADZUNA_APP_KEY"),
				Country: defaultCountry,
			},
			SerpAPI: SerpAPIConfig{
				Enabled: true,
				APIKey:  os.Getenv("SERPAPI_API_KEY"),
			},
		},
		HTTP: HTTPConfig{Timeout: defaultTimeout},
		Search: SearchConfig{
			Title:          defaultTitle,
			Location:       defaultLocation,
			ResultsPerPage: defaultResultsPerPage,
			SortByDate:     true,
		},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Sections left out of the file keep the values from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if a := raw.Providers.Adzuna; a != nil {
		az := &cfg.Providers.Adzuna
		az.Enabled = a.Enabled == nil || *a.Enabled
		overrideString(&az.AppID, a.AppID)
		overrideString(&az.AppKey, a.AppKey)
		overrideString(&az.Country, a.Country)
		overrideString(&az.BaseURL, a.BaseURL)
	}
	if sp := raw.Providers.SerpAPI; sp != nil {
		serp := &cfg.Providers.SerpAPI
		serp.Enabled = sp.Enabled == nil || *sp.Enabled
		overrideString(&serp.APIKey, sp.APIKey)
		overrideString(&serp.BaseURL, sp.BaseURL)
	}

	if raw.HTTP.Timeout != "" {
		cfg.HTTP.Timeout, err = time.ParseDuration(raw.HTTP.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse http.timeout %q: %w", raw.HTTP.Timeout, err)
		}
	}

	overrideString(&cfg.Search.Title, raw.Search.Title)
	overrideString(&cfg.Search.Location, raw.Search.Location)
	if raw.Search.ResultsPerPage != 0 {
		cfg.Search.ResultsPerPage = raw.Search.ResultsPerPage
	}
	cfg.Search.MinExperience = raw.Search.MinExperience
	cfg.Search.Skill = raw.Search.Skill
	if raw.Search.SortByDate != nil {
		cfg.Search.SortByDate = *raw.Search.SortByDate
	}

	cfg.Skills = raw.Skills

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overrideString replaces *dst with v unless v is empty, so fields missing
// from the file keep their defaults.
func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func validate(cfg *Config) error {
	if cfg.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %v", cfg.HTTP.Timeout)
	}
	if !cfg.Providers.Adzuna.Enabled && !cfg.Providers.SerpAPI.Enabled {
		return fmt.Errorf("at least one provider must be enabled")
	}
	if n := cfg.Search.ResultsPerPage; n < 5 || n > 50 {
		return fmt.Errorf("search.results_per_page must be between 5 and 50, got %d", n)
	}
	if n := cfg.Search.MinExperience; n < 0 {
		return fmt.Errorf("search.min_experience must not be negative, got %d", n)
	}
	return nil
}
