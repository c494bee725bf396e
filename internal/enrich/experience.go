package enrich

import (
	"regexp"
	"strconv"
)

var experiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s+years?`)

// Experience is the first "<n>[+] year(s)" phrase found in a description.
type Experience struct {
	Years *int   // nil when the number does not fit in an int
	Text  string // the matched phrase
}

// ExtractExperience returns the first experience phrase in text, matched
// case-insensitively. ok is false when the text has no such phrase.
func ExtractExperience(text string) (exp Experience, ok bool) {
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return Experience{}, false
	}
	exp.Text = m[0]
	if n, err := strconv.Atoi(m[1]); err == nil {
		exp.Years = &n
	}
	return exp, true
}
