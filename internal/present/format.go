package present

import (
	"strings"

	"github.com/amishk599/jobharvester/internal/model"
)

// Columns is the column order of the table view and the CSV export.
var Columns = []string{"Title", "Company", "Location", "Source", "Posted", "Experience", "Skills", "Apply Link"}

const (
	noTitle        = "No Title"
	notAvailable   = "N/A"
	previewLength  = 250
	previewEllipse = "..."
)

// Row renders a job as one cell per entry in Columns.
func Row(j model.Job) []string {
	return []string{
		orDefault(j.Title, noTitle),
		orDefault(j.Company, notAvailable),
		orDefault(j.Location, notAvailable),
		string(j.Source),
		orDefault(j.Created, notAvailable),
		orDefault(experienceText(j), notAvailable),
		strings.Join(skills(j), ", "),
		j.ApplyURL,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func experienceText(j model.Job) string {
	if j.Enrichment == nil {
		return ""
	}
	return j.Enrichment.ExperienceText
}

func skills(j model.Job) []string {
	if j.Enrichment == nil {
		return nil
	}
	return j.Enrichment.Skills
}

// preview shortens a description to previewLength runes.
func preview(desc string) string {
	r := []rune(desc)
	if len(r) <= previewLength {
		return desc
	}
	return string(r[:previewLength]) + previewEllipse
}
