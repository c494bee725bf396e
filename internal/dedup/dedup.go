package dedup

import (
	"strings"

	"github.com/amishk599/jobharvester/internal/model"
)

// Key derives the identity of a posting: the normalized apply URL when there
// is one, otherwise title, company and location joined by "|".
func Key(j model.Job) string {
	if u := norm(j.ApplyURL); u != "" {
		return u
	}
	return norm(j.Title) + "|" + norm(j.Company) + "|" + norm(j.Location)
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Dedupe drops every job whose key was already seen, keeping the first
// occurrence in place. Jobs are not modified and survivors keep their order.
func Dedupe(jobs []model.Job) []model.Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		k := Key(j)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, j)
	}
	return out
}
