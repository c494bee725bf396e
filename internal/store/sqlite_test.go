package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/amishk599/jobharvester/internal/model"
)

func newTestExporter(t *testing.T) *SQLiteExporter {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteExporter(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteExporter: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(n int) *int { return &n }

func TestExport_WritesRows(t *testing.T) {
	s := newTestExporter(t)
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	jobs := []model.Job{
		{
			Title: "Data Scientist", Company: "Acme", Location: "Pune",
			Description: "5+ years python", Created: "2026-02-10T09:00:00Z", CreatedAt: &created,
			ApplyURL: "https://a/1", Source: model.SourceAdzuna,
			Enrichment: &model.Enrichment{ExperienceYears: intPtr(5), ExperienceText: "5+ years", Skills: []string{"python", "sql"}},
		},
		{
			Title: "Analyst", Source: model.SourceSerpAPI,
			Enrichment: &model.Enrichment{Skills: []string{}},
		},
	}
	if err := s.Export(jobs); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}

	var years sql.NullInt64
	var skills, source string
	err := s.db.QueryRow("SELECT experience_years, skills, source FROM jobs WHERE dedup_key = ?", "https://a/1").
		Scan(&years, &skills, &source)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !years.Valid || years.Int64 != 5 || skills != "python,sql" || source != "adzuna" {
		t.Errorf("got years=%v skills=%q source=%q", years, skills, source)
	}

	var company sql.NullString
	if err := s.db.QueryRow("SELECT company, experience_years FROM jobs WHERE dedup_key = ?", "analyst||").
		Scan(&company, &years); err != nil {
		t.Fatalf("query: %v", err)
	}
	if company.Valid || years.Valid {
		t.Errorf("expected NULL company and years, got %v %v", company, years)
	}
}

func TestExport_UpsertsByDedupKey(t *testing.T) {
	s := newTestExporter(t)
	job := model.Job{Title: "Engineer", ApplyURL: "https://a/1", Source: model.SourceAdzuna}
	if err := s.Export([]model.Job{job}); err != nil {
		t.Fatalf("first Export: %v", err)
	}
	job.Title = "Engineer II"
	if err := s.Export([]model.Job{job}); err != nil {
		t.Fatalf("second Export: %v", err)
	}

	var count int
	var title string
	if err := s.db.QueryRow("SELECT COUNT(*), MAX(title) FROM jobs").Scan(&count, &title); err != nil {
		t.Fatal(err)
	}
	if count != 1 || title != "Engineer II" {
		t.Errorf("got count=%d title=%q, want 1 and Engineer II", count, title)
	}
}

func TestExport_Empty(t *testing.T) {
	s := newTestExporter(t)
	if err := s.Export(nil); err != nil {
		t.Fatalf("Export(nil): %v", err)
	}
}
