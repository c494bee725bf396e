package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/amishk599/jobharvester/internal/model"
)

// Mapping lists, per canonical field, the raw key paths a provider may use.
// Paths are dotted ("company.display_name") and may index arrays
// ("apply_options.0.link"). The first path holding a non-empty value wins.
type Mapping struct {
	Source      model.Source
	Title       []string
	Company     []string
	Location    []string
	Description []string
	Created     []string
	ApplyURL    []string
}

// Adzuna maps the Adzuna search API result shape.
var Adzuna = Mapping{
	Source:      model.SourceAdzuna,
	Title:       []string{"title"},
	Company:     []string{"company.display_name"},
	Location:    []string{"location.display_name"},
	Description: []string{"description"},
	Created:     []string{"created"},
	ApplyURL:    []string{"redirect_url"},
}

// SerpAPI maps SerpApi Google Jobs results. The shape has shifted between
// API versions, hence the long alias lists.
var SerpAPI = Mapping{
	Source:      model.SourceSerpAPI,
	Title:       []string{"title", "job_title"},
	Company:     []string{"company_name", "hiring_organization.name", "company"},
	Location:    []string{"location", "location_name", "candidate_required_location"},
	Description: []string{"description", "snippet"},
	Created:     []string{"posted_at", "created", "date", "date_posted", "detected_extensions.posted_at"},
	ApplyURL:    []string{"apply_link", "link", "url", "redirect_url", "apply_options.0.link", "share_link"},
}

// Normalize maps one raw record into a Job. Missing fields stay empty; it
// never fails.
func (m Mapping) Normalize(raw model.RawJob) model.Job {
	obj := map[string]any(raw)
	created := first(obj, m.Created)
	return model.Job{
		Title:       first(obj, m.Title),
		Company:     first(obj, m.Company),
		Location:    first(obj, m.Location),
		Description: PlainText(first(obj, m.Description)),
		Created:     created,
		CreatedAt:   ParseDate(created),
		ApplyURL:    first(obj, m.ApplyURL),
		Source:      m.Source,
	}
}

// NormalizeAll maps every raw record, preserving order.
func (m Mapping) NormalizeAll(raws []model.RawJob) []model.Job {
	jobs := make([]model.Job, 0, len(raws))
	for _, r := range raws {
		jobs = append(jobs, m.Normalize(r))
	}
	return jobs
}

func first(obj map[string]any, paths []string) string {
	for _, p := range paths {
		if s, ok := text(lookup(obj, p)); ok {
			return s
		}
	}
	return ""
}

func lookup(obj map[string]any, path string) any {
	var cur any = obj
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

// text renders scalar JSON values. Blank strings, nulls, bools and nested
// values do not count as present.
func text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return "", false
		}
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}

// htmlTag matches a well-formed tag from the small set providers use for
// formatting. Bare "<" in prose ("a<b", "List<String>") does not match.
var htmlTag = regexp.MustCompile(`(?i)</?(p|br|li|ul|ol|div|span|b|strong|i|em|u|h[1-6]|table|tr|td|th|a)(\s+[a-z-]+=("[^"]*"|'[^']*'|[^\s>]+))*\s*/?>`)

// PlainText strips HTML markup from a description and collapses whitespace.
// Text without a recognized tag is returned unchanged.
func PlainText(s string) string {
	if !htmlTag.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	// Keep words on either side of block boundaries apart.
	doc.Find("br, p, li, div, tr, h1, h2, h3, h4, h5, h6").AfterHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " ")
}

var dateLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// ParseDate tries the known provider date formats. Relative strings such as
// "3 days ago" and anything unrecognized yield nil.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
