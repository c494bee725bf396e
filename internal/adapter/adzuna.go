package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/amishk599/jobharvester/internal/model"
)

const (
	AdzunaBaseURL        = "https://api.adzuna.com/v1/api/jobs"
	AdzunaDefaultCountry = "in"
)

// AdzunaAdapter fetches jobs from the Adzuna search API.
type AdzunaAdapter struct {
	baseURL string
	country string
	appID   string
	appKey  string
	client  *http.Client
}

// NewAdzunaAdapter creates an adapter for the given country index
// ("in", "gb", "us", ...). Empty baseURL and country fall back to defaults.
func NewAdzunaAdapter(baseURL, country, appID, appKey string, client *http.Client) *AdzunaAdapter {
	if baseURL == "" {
		baseURL = AdzunaBaseURL
	}
	if country == "" {
		country = AdzunaDefaultCountry
	}
	return &AdzunaAdapter{
		baseURL: baseURL,
		country: country,
		appID:   appID,
		appKey:  appKey,
		client:  client,
	}
}

// FetchJobs retrieves one page of results for q. The records are returned
// raw; the "results" array is the only part of the payload used.
func (a *AdzunaAdapter) FetchJobs(ctx context.Context, q model.Query) ([]model.RawJob, error) {
	if a.appID == "" || a.appKey == "" {
		return nil, fmt.Errorf("adzuna: app_id and app_key are required: %w", model.ErrMissingCredentials)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	endpoint := fmt.Sprintf("%s/%s/search/%d", a.baseURL, a.country, page)

	params := url.Values{}
	params.Set("app_id", a.appID)
	params.Set("app_key", a.appKey)
	params.Set("results_per_page", strconv.Itoa(q.ResultsPerPage))
	params.Set("what", q.Title)
	params.Set("where", q.Location)

	payload, err := getJSON(ctx, a.client, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("adzuna fetch for %q: %w", q.Title, err)
	}

	return extractList(payload, "results"), nil
}
