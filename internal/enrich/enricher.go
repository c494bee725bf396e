package enrich

import "github.com/amishk599/jobharvester/internal/model"

// Enricher attaches experience and skill fields derived from descriptions.
type Enricher struct {
	vocab []string
}

// NewEnricher returns an enricher for the given vocabulary. An empty
// vocabulary selects DefaultSkills.
func NewEnricher(vocab []string) *Enricher {
	v := NormalizeVocabulary(vocab)
	if len(v) == 0 {
		v = NormalizeVocabulary(DefaultSkills)
	}
	return &Enricher{vocab: v}
}

// Vocabulary returns the normalized terms the enricher matches.
func (e *Enricher) Vocabulary() []string {
	return append([]string(nil), e.vocab...)
}

// Enrich sets job.Enrichment from job.Description. No other field changes.
func (e *Enricher) Enrich(job *model.Job) {
	en := &model.Enrichment{
		Skills: DetectSkills(job.Description, e.vocab),
	}
	if exp, ok := ExtractExperience(job.Description); ok {
		en.ExperienceYears = exp.Years
		en.ExperienceText = exp.Text
	}
	job.Enrichment = en
}

// EnrichAll enriches every job in place.
func (e *Enricher) EnrichAll(jobs []model.Job) {
	for i := range jobs {
		e.Enrich(&jobs[i])
	}
}
