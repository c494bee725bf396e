package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amishk599/jobharvester/internal/model"
)

func TestSerpAPI_FetchJobs_Success(t *testing.T) {
	payload := `{
		"search_metadata": {"status": "Success"},
		"jobs_results": [
			{
				"title": "Data Scientist",
				"company_name": "Globex",
				"location": "Pune, Maharashtra, India",
				"description": "2 years of SQL",
				"detected_extensions": {"posted_at": "3 days ago"},
				"apply_options": [{"title": "LinkedIn", "link": "https://linkedin.com/jobs/view/1"}]
			}
		]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("engine") != "google_jobs" {
			t.Errorf("engine = %q, want google_jobs", q.Get("engine"))
		}
		if q.Get("q") != "data scientist" || q.Get("location") != "India" {
			t.Errorf("unexpected q/location: %v", q)
		}
		if q.Get("api_key") != "serp-key" || q.Get("num") != "20" {
			t.Errorf("unexpected api_key/num: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := NewSerpAPIAdapter("", "serp-key", rewriteClient(srv))
	jobs, err := a.FetchJobs(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0]["company_name"] != "Globex" {
		t.Errorf("expected company_name Globex, got %v", jobs[0]["company_name"])
	}
}

func TestSerpAPI_FetchJobs_AlternateListKeys(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{name: "jobs key", payload: `{"jobs": [{"title": "a"}, {"title": "b"}]}`, want: 2},
		{name: "results key", payload: `{"results": [{"title": "a"}]}`, want: 1},
		{name: "top-level array", payload: `[{"title": "a"}, {"title": "b"}, {"title": "c"}]`, want: 3},
		{name: "empty jobs_results falls through", payload: `{"jobs_results": [], "jobs": [{"title": "a"}]}`, want: 1},
		{name: "no known key", payload: `{"search_metadata": {}}`, want: 0},
		{name: "non-object items skipped", payload: `{"jobs_results": ["x", {"title": "a"}, 3]}`, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.payload))
			}))
			defer srv.Close()

			a := NewSerpAPIAdapter("", "k", rewriteClient(srv))
			jobs, err := a.FetchJobs(context.Background(), testQuery())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(jobs) != tt.want {
				t.Errorf("got %d jobs, want %d", len(jobs), tt.want)
			}
		})
	}
}

func TestSerpAPI_FetchJobs_MissingAPIKey(t *testing.T) {
	a := NewSerpAPIAdapter("http://127.0.0.1:1", "", http.DefaultClient)
	_, err := a.FetchJobs(context.Background(), testQuery())
	if !errors.Is(err, model.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestSerpAPI_FetchJobs_InBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Invalid API key."}`))
	}))
	defer srv.Close()

	a := NewSerpAPIAdapter("", "k", rewriteClient(srv))
	_, err := a.FetchJobs(context.Background(), testQuery())
	if err == nil {
		t.Fatal("expected error for in-body error, got nil")
	}
}

func TestSerpAPI_FetchJobs_NoResultsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Google hasn't returned any results for this query."}`))
	}))
	defer srv.Close()

	a := NewSerpAPIAdapter("", "k", rewriteClient(srv))
	jobs, err := a.FetchJobs(context.Background(), testQuery())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected 0 jobs, got %d", len(jobs))
	}
}

func TestSerpAPI_FetchJobs_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := NewSerpAPIAdapter("", "k", rewriteClient(srv))
	_, err := a.FetchJobs(context.Background(), testQuery())
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected HTTPError 429, got %v", err)
	}
}
