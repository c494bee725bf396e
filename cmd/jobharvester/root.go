package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/amishk599/jobharvester/internal/adapter"
	"github.com/amishk599/jobharvester/internal/config"
	"github.com/amishk599/jobharvester/internal/enrich"
	"github.com/amishk599/jobharvester/internal/harvest"
	"github.com/amishk599/jobharvester/internal/model"
	"github.com/amishk599/jobharvester/internal/normalize"
	"github.com/amishk599/jobharvester/internal/secrets"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobharvester",
	Short: "Search Adzuna and Google Jobs in one go",
	Long: "JobHarvester queries Adzuna and SerpApi Google Jobs, merges and deduplicates the results,\n" +
		"extracts experience and skills from each description, and filters the list.",
	// `jobharvester` with no subcommand runs a search with the configured defaults.
	RunE: runSearch,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBHARVESTER_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addSearchFlags(rootCmd)
}

// loadConfig loads .env, resolves the config path and parses it, then fills
// missing credentials from the keychain.
// Priority: explicit path arg > JOBHARVESTER_CONFIG env var > "./config.yaml".
// Only the implicit default path may be absent; built-in defaults apply then.
func loadConfig(path string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	explicit := true
	if path == "" {
		if env := os.Getenv("JOBHARVESTER_CONFIG"); env != "" {
			path = env
		} else {
			path = defaultConfigPath
			explicit = false
		}
	}

	var cfg *config.Config
	if _, err := os.Stat(path); !explicit && errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}

	secrets.Resolve(cfg)
	return cfg, nil
}

// setupLogger logs to stderr so tables and CSV on stdout stay clean.
func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// buildSources returns the enabled providers in dedup priority order:
// Adzuna first, then SerpApi.
func buildSources(cfg *config.Config, httpClient *http.Client) []harvest.Source {
	var sources []harvest.Source
	if az := cfg.Providers.Adzuna; az.Enabled {
		sources = append(sources, harvest.Source{
			Name:    model.SourceAdzuna,
			Fetcher: adapter.NewAdzunaAdapter(az.BaseURL, az.Country, az.AppID, az.AppKey, httpClient),
			Mapping: normalize.Adzuna,
		})
	}
	if sp := cfg.Providers.SerpAPI; sp.Enabled {
		sources = append(sources, harvest.Source{
			Name:    model.SourceSerpAPI,
			Fetcher: adapter.NewSerpAPIAdapter(sp.BaseURL, sp.APIKey, httpClient),
			Mapping: normalize.SerpAPI,
		})
	}
	return sources
}

func buildHarvester(cfg *config.Config, logger *slog.Logger) *harvest.Harvester {
	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	return harvest.NewHarvester(
		buildSources(cfg, httpClient),
		enrich.NewEnricher(cfg.Skills),
		cfg.Search.SortByDate,
		logger,
	)
}
