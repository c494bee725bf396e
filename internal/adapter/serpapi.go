package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amishk599/jobharvester/internal/model"
)

const (
	SerpAPIBaseURL = "https://serpapi.com"
	serpAPIEngine  = "google_jobs"
)

// serpAPIListKeys are the response keys that have carried the job list
// across SerpApi versions, in lookup order.
var serpAPIListKeys = []string{"jobs_results", "jobs", "results"}

// SerpAPIAdapter fetches jobs from SerpApi's Google Jobs engine.
type SerpAPIAdapter struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSerpAPIAdapter creates an adapter authenticated with apiKey.
func NewSerpAPIAdapter(baseURL, apiKey string, client *http.Client) *SerpAPIAdapter {
	if baseURL == "" {
		baseURL = SerpAPIBaseURL
	}
	return &SerpAPIAdapter{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

// FetchJobs retrieves one page of Google Jobs results for q.
func (a *SerpAPIAdapter) FetchJobs(ctx context.Context, q model.Query) ([]model.RawJob, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("serpapi: api_key is required: %w", model.ErrMissingCredentials)
	}

	params := url.Values{}
	params.Set("engine", serpAPIEngine)
	params.Set("q", q.Title)
	params.Set("location", q.Location)
	params.Set("api_key", a.apiKey)
	params.Set("num", strconv.Itoa(q.ResultsPerPage))

	payload, err := getJSON(ctx, a.client, a.baseURL+"/search.json", params)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch for %q: %w", q.Title, err)
	}

	if msg := payloadError(payload); msg != "" {
		// "hasn't returned any results" is how Google Jobs reports an empty page.
		if isNoResults(msg) {
			return []model.RawJob{}, nil
		}
		return nil, fmt.Errorf("serpapi fetch for %q: %w", q.Title, errors.New(msg))
	}

	return extractList(payload, serpAPIListKeys...), nil
}

func isNoResults(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "hasn't returned any results")
}
