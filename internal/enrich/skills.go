package enrich

import (
	"sort"
	"strings"
)

// DefaultSkills is the built-in skill vocabulary.
var DefaultSkills = []string{
	"python", "sql", "machine learning", "deep learning", "nlp",
	"pandas", "numpy", "tensorflow", "pytorch", "spark",
	"statistics", "power bi", "tableau", "aws", "azure",
}

// DetectSkills returns the vocabulary terms that occur anywhere in text as a
// case-insensitive substring, sorted. vocab is expected to be lower-case
// without duplicates (see NormalizeVocabulary).
func DetectSkills(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, s := range vocab {
		if s != "" && strings.Contains(lower, s) {
			found = append(found, s)
		}
	}
	sort.Strings(found)
	return found
}

// NormalizeVocabulary lower-cases and trims terms and drops blanks and
// duplicates, keeping first-seen order.
func NormalizeVocabulary(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
