package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amishk599/jobharvester/internal/dedup"
	"github.com/amishk599/jobharvester/internal/model"
)

// SQLiteExporter writes search results to a SQLite file for ad hoc querying.
// It is an output sink: nothing in JobHarvester reads the file back.
type SQLiteExporter struct {
	db *sql.DB
}

// NewSQLiteExporter opens (or creates) a SQLite database at dbPath and ensures the
// jobs table exists.
func NewSQLiteExporter(dbPath string) (*SQLiteExporter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS jobs (
		dedup_key        TEXT PRIMARY KEY,
		title            TEXT,
		company          TEXT,
		location         TEXT,
		source           TEXT NOT NULL,
		created          TEXT,
		created_at       DATETIME,
		experience_years INTEGER,
		experience_text  TEXT,
		skills           TEXT,
		apply_url        TEXT,
		description      TEXT NOT NULL,
		exported_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating jobs table: %w", err)
	}

	return &SQLiteExporter{db: db}, nil
}

// Export upserts jobs keyed by their dedup key in a single transaction.
func (s *SQLiteExporter) Export(jobs []model.Job) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO jobs (
		dedup_key, title, company, location, source, created, created_at,
		experience_years, experience_text, skills, apply_url, description, exported_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare export: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, j := range jobs {
		var createdAt, years any
		if j.CreatedAt != nil {
			createdAt = j.CreatedAt.UTC()
		}
		var expText, skills string
		if en := j.Enrichment; en != nil {
			if en.ExperienceYears != nil {
				years = *en.ExperienceYears
			}
			expText = en.ExperienceText
			skills = strings.Join(en.Skills, ",")
		}
		if _, err := stmt.Exec(
			dedup.Key(j), nullable(j.Title), nullable(j.Company), nullable(j.Location), string(j.Source),
			nullable(j.Created), createdAt, years, nullable(expText), skills, nullable(j.ApplyURL),
			j.Description, now,
		); err != nil {
			return fmt.Errorf("exporting job %q: %w", j.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// nullable stores absent text as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Close closes the underlying database connection.
func (s *SQLiteExporter) Close() error {
	return s.db.Close()
}
