package model

import (
	"context"
	"time"
)

// Source identifies which provider produced a job.
type Source string

const (
	SourceAdzuna  Source = "adzuna"
	SourceSerpAPI Source = "serpapi"
)

// RawJob is a provider-native record as decoded from the JSON response.
// Shape varies by provider; the normalizer is the only reader.
type RawJob map[string]any

// Unified representation of a job listing from any provider.
// Empty text fields mean the provider did not supply a value.
type Job struct {
	Title       string
	Company     string
	Location    string
	Description string     // never absent, empty when unknown
	Created     string     // raw posted date as supplied by the provider
	CreatedAt   *time.Time // parsed from Created when the format is known; sort key only
	ApplyURL    string     // destination link
	Source      Source
	Enrichment  *Enrichment // nil until the enricher runs
}

// Enrichment holds fields derived from the free-text description.
type Enrichment struct {
	ExperienceYears *int     // minimum years mentioned, nil when not found or unparseable
	ExperienceText  string   // matched phrase, e.g. "5+ years"
	Skills          []string // detected vocabulary terms, sorted
}

// Query is a single search request sent to every provider.
type Query struct {
	Title          string
	Location       string
	ResultsPerPage int `validate:"min=5,max=50"`
	Page           int `validate:"min=1"`
}

// JobFetcher fetches one page of raw job records from a provider.
type JobFetcher interface {
	FetchJobs(ctx context.Context, q Query) ([]RawJob, error)
}

// JobFilter decides whether a job matches the user's criteria.
type JobFilter interface {
	Match(job Job) bool
}
