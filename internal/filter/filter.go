package filter

import (
	"strings"

	"github.com/amishk599/jobharvester/internal/model"
)

// ExperienceAndSkillFilter keeps jobs that meet a minimum experience and
// mention a required skill. Matching on the skill is case-insensitive and
// runs against the description text, not the detected skill set.
type ExperienceAndSkillFilter struct {
	minYears int
	skill    string
}

// NewExperienceAndSkillFilter returns a filter for the given criteria.
// minYears <= 0 disables the experience rule; an empty skill disables the
// skill rule. The skill is lower-cased but otherwise matched as given.
func NewExperienceAndSkillFilter(minYears int, skill string) *ExperienceAndSkillFilter {
	return &ExperienceAndSkillFilter{
		minYears: minYears,
		skill:    strings.ToLower(skill),
	}
}

// Match reports whether the job passes both rules. Jobs whose experience is
// unknown are never excluded by the experience rule.
func (f *ExperienceAndSkillFilter) Match(job model.Job) bool {
	if f.minYears > 0 && job.Enrichment != nil && job.Enrichment.ExperienceYears != nil {
		if *job.Enrichment.ExperienceYears < f.minYears {
			return false
		}
	}

	if f.skill != "" && !strings.Contains(strings.ToLower(job.Description), f.skill) {
		return false
	}

	return true
}

// Apply returns the jobs that match f, in input order.
func Apply(f model.JobFilter, jobs []model.Job) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}
