package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/jobharvester/internal/adapter"
	"github.com/amishk599/jobharvester/internal/config"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List job sources and their credential status",
	Long:  "Reads the config, the environment and the keychain and prints which sources are enabled and configured.",
	RunE:  runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-10s %-10s %-14s %s\n", "Source", "Status", "Credentials", "Endpoint")
	fmt.Println(strings.Repeat("─", 72))

	az := cfg.Providers.Adzuna
	azURL := orDefault(az.BaseURL, adapter.AdzunaBaseURL) + "/" + orDefault(az.Country, adapter.AdzunaDefaultCountry)
	printSource("adzuna", az.Enabled, az.AppID != "" && az.AppKey != "", azURL)

	sp := cfg.Providers.SerpAPI
	printSource("serpapi", sp.Enabled, sp.APIKey != "", orDefault(sp.BaseURL, adapter.SerpAPIBaseURL))

	printSearchDefaults(cfg)
	return nil
}

func printSource(name string, enabled, hasCreds bool, endpoint string) {
	status := "enabled"
	if !enabled {
		status = "disabled"
	}
	creds := "configured"
	if !hasCreds {
		creds = "missing"
	}
	fmt.Printf("%-10s %-10s %-14s %s\n", name, status, creds, endpoint)
}

func printSearchDefaults(cfg *config.Config) {
	s := cfg.Search
	fmt.Printf("\nDefaults: title=%q location=%q per_page=%d min_experience=%d skill=%q sort_by_date=%t timeout=%s\n",
		s.Title, s.Location, s.ResultsPerPage, s.MinExperience, s.Skill, s.SortByDate, cfg.HTTP.Timeout)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
