package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/amishk599/jobharvester/internal/config"
	"github.com/amishk599/jobharvester/internal/harvest"
	"github.com/amishk599/jobharvester/internal/model"
	"github.com/amishk599/jobharvester/internal/present"
	"github.com/amishk599/jobharvester/internal/store"
)

const (
	viewTable    = "table"
	viewCards    = "cards"
	defaultWidth = 120
)

var (
	flagTitle       string
	flagLocation    string
	flagPerPage     int
	flagPage        int
	flagMinExp      int
	flagSkill       string
	flagView        string
	flagCSV         string
	flagSQLite      string
	flagInteractive bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search all enabled sources and print matching jobs",
	Long: "Fetches one page from every enabled source, merges and deduplicates the results,\n" +
		"enriches them with experience and skills, applies the filters and prints the list.",
	RunE: runSearch,
}

func init() {
	addSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

// addSearchFlags registers the search flags on cmd. Root and search share
// the same variables so `jobharvester --skill aws` works without a subcommand.
func addSearchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&flagTitle, "title", "t", "", "job title or keywords (default: search.title from config)")
	f.StringVarP(&flagLocation, "location", "l", "", "location (default: search.location from config)")
	f.IntVar(&flagPerPage, "per-page", 0, "results per page per source, 5-50 (default: search.results_per_page from config)")
	f.IntVar(&flagPage, "page", 1, "page number")
	f.IntVar(&flagMinExp, "min-exp", 0, "minimum years of experience; jobs with no stated experience are kept")
	f.StringVar(&flagSkill, "skill", "", "required skill, matched case-insensitively against the description")
	f.StringVar(&flagView, "view", viewTable, "output view: table or cards")
	f.StringVar(&flagCSV, "csv", "", "also write the results to this CSV file")
	f.StringVar(&flagSQLite, "sqlite", "", "also write the results to this SQLite database")
	f.BoolVarP(&flagInteractive, "interactive", "i", false, "browse results in an interactive terminal UI")
}

// buildQuery merges config defaults with the flags the user set explicitly.
func buildQuery(cmd *cobra.Command, cfg *config.Config) (model.Query, harvest.Criteria) {
	s := cfg.Search
	q := model.Query{
		Title:          s.Title,
		Location:       s.Location,
		ResultsPerPage: s.ResultsPerPage,
		Page:           flagPage,
	}
	c := harvest.Criteria{MinExperience: s.MinExperience, Skill: s.Skill}

	f := cmd.Flags()
	if f.Changed("title") {
		q.Title = flagTitle
	}
	if f.Changed("location") {
		q.Location = flagLocation
	}
	if f.Changed("per-page") {
		q.ResultsPerPage = flagPerPage
	}
	if f.Changed("min-exp") {
		c.MinExperience = flagMinExp
	}
	if f.Changed("skill") {
		c.Skill = flagSkill
	}
	return q, c
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	if flagView != viewTable && flagView != viewCards {
		return fmt.Errorf("unknown view %q (want %s or %s)", flagView, viewTable, viewCards)
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	q, criteria := buildQuery(cmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var res harvest.Result
	if flagInteractive {
		// Log lines would tear the alt-screen UI.
		h := buildHarvester(cfg, discardLogger())
		res, err = present.RunLoader(ctx, "Searching jobs", func(ctx context.Context) (harvest.Result, error) {
			return h.Search(ctx, q, criteria)
		})
	} else {
		res, err = buildHarvester(cfg, logger).Search(ctx, q, criteria)
	}
	if err != nil {
		return err
	}

	if err := export(res.Jobs); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	warnings := sourceWarnings(res)
	if flagInteractive {
		return present.Browse(res.Jobs, warnings)
	}
	return printResult(os.Stdout, res, warnings, terminalWidth())
}

func sourceWarnings(res harvest.Result) []string {
	var warnings []string
	for _, r := range res.Reports {
		if msg := r.Message(); msg != "" {
			warnings = append(warnings, msg)
		}
	}
	return warnings
}

func printResult(w io.Writer, res harvest.Result, warnings []string, width int) error {
	for _, msg := range warnings {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", msg)
	}

	if len(res.Jobs) == 0 {
		_, err := fmt.Fprintln(w, "No jobs match the filters.")
		return err
	}

	fmt.Fprintf(w, "Found %d jobs (%d fetched, %d after dedup)\n\n", len(res.Jobs), res.Merged, res.Unique)
	if flagView == viewCards {
		return present.Cards(w, res.Jobs, width)
	}
	return present.Table(w, res.Jobs, width)
}

// export writes jobs to the files named by --csv and --sqlite.
func export(jobs []model.Job) error {
	if flagCSV != "" {
		f, err := os.Create(flagCSV)
		if err != nil {
			return fmt.Errorf("create csv file: %w", err)
		}
		if err := present.WriteCSV(f, jobs); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close csv file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %d jobs to %s\n", len(jobs), flagCSV)
	}

	if flagSQLite != "" {
		exp, err := store.NewSQLiteExporter(flagSQLite)
		if err != nil {
			return err
		}
		defer exp.Close()
		if err := exp.Export(jobs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d jobs to %s\n", len(jobs), flagSQLite)
	}
	return nil
}

func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
