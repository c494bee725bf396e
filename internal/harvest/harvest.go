package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/amishk599/jobharvester/internal/dedup"
	"github.com/amishk599/jobharvester/internal/enrich"
	"github.com/amishk599/jobharvester/internal/filter"
	"github.com/amishk599/jobharvester/internal/model"
	"github.com/amishk599/jobharvester/internal/normalize"
)

// Source pairs a provider fetcher with the mapping for its record shape.
type Source struct {
	Name    model.Source
	Fetcher model.JobFetcher
	Mapping normalize.Mapping
}

// Criteria are the user's post-fetch filters.
type Criteria struct {
	MinExperience int    // 0 disables
	Skill         string // required substring of the description, empty disables
}

// SourceReport is the outcome of one provider call.
type SourceReport struct {
	Source  model.Source
	Fetched int
	Err     error
}

// Message renders the report's error for the end user. Empty when the call
// succeeded.
func (r SourceReport) Message() string {
	if r.Err == nil {
		return ""
	}
	if errors.Is(r.Err, model.ErrMissingCredentials) {
		return fmt.Sprintf("%s: credentials are not configured", r.Source)
	}
	return fmt.Sprintf("%s: failed to fetch jobs: %v", r.Source, r.Err)
}

// Result is the output of one search.
type Result struct {
	Jobs    []model.Job    // deduplicated, enriched and filtered
	Reports []SourceReport // one per source, in source order
	Merged  int            // normalized jobs across all sources
	Unique  int            // jobs left after dedup, before filtering
}

// Harvester owns the search pipeline:
// fetch → normalize → merge → dedup → sort → enrich → filter.
type Harvester struct {
	sources    []Source
	enricher   *enrich.Enricher
	sortByDate bool
	logger     *slog.Logger
}

// NewHarvester creates a harvester. Sources are queried in the given order,
// which is also the dedup priority.
func NewHarvester(sources []Source, enricher *enrich.Enricher, sortByDate bool, logger *slog.Logger) *Harvester {
	return &Harvester{
		sources:    sources,
		enricher:   enricher,
		sortByDate: sortByDate,
		logger:     logger,
	}
}

// Search runs one search. Provider failures are reported per source and never
// abort the run; the only error is an invalid query.
func (h *Harvester) Search(ctx context.Context, q model.Query, c Criteria) (Result, error) {
	q = q.WithDefaults()
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	var merged []model.Job
	for _, src := range h.sources {
		raws, err := src.Fetcher.FetchJobs(ctx, q)
		report := SourceReport{Source: src.Name, Fetched: len(raws), Err: err}
		res.Reports = append(res.Reports, report)
		if err != nil {
			h.logger.Warn("source failed", "source", src.Name, "error", err)
			continue
		}
		h.logger.Debug("fetched source", "source", src.Name, "fetched", len(raws))
		merged = append(merged, src.Mapping.NormalizeAll(raws)...)
	}
	res.Merged = len(merged)

	unique := dedup.Dedupe(merged)
	res.Unique = len(unique)

	if h.sortByDate {
		SortNewestFirst(unique)
	}

	h.enricher.EnrichAll(unique)
	res.Jobs = filter.Apply(filter.NewExperienceAndSkillFilter(c.MinExperience, c.Skill), unique)

	h.logger.Info("search complete",
		"title", q.Title,
		"location", q.Location,
		"merged", res.Merged,
		"unique", res.Unique,
		"matched", len(res.Jobs),
	)

	return res, nil
}

// SortNewestFirst orders jobs by CreatedAt descending. Jobs without a parsed
// date sort after all dated ones; ties keep their relative order.
func SortNewestFirst(jobs []model.Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i].CreatedAt, jobs[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
