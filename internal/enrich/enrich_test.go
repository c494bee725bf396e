package enrich

import (
	"reflect"
	"testing"

	"github.com/amishk599/jobharvester/internal/model"
)

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantYears int
		wantText  string
	}{
		{
			name:      "plus years",
			input:     "Looking for a candidate with 5+ years experience",
			wantOK:    true,
			wantYears: 5,
			wantText:  "5+ years",
		},
		{
			name:      "singular year",
			input:     "Minimum 1 year in industry",
			wantOK:    true,
			wantYears: 1,
			wantText:  "1 year",
		},
		{
			name:      "case insensitive",
			input:     "10 YEARS of SQL",
			wantOK:    true,
			wantYears: 10,
			wantText:  "10 YEARS",
		},
		{
			name:      "first match wins",
			input:     "3 years of Go, 7 years overall",
			wantOK:    true,
			wantYears: 3,
			wantText:  "3 years",
		},
		{
			name:      "multiple whitespace",
			input:     "at least 4+\t years",
			wantOK:    true,
			wantYears: 4,
			wantText:  "4+\t years",
		},
		{name: "no whitespace is not a match", input: "4years", wantOK: false},
		{name: "no digits", input: "several years of experience", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, ok := ExtractExperience(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if exp.Years != nil || exp.Text != "" {
					t.Errorf("expected zero Experience, got %+v", exp)
				}
				return
			}
			if exp.Years == nil || *exp.Years != tt.wantYears {
				t.Errorf("Years = %v, want %d", exp.Years, tt.wantYears)
			}
			if exp.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", exp.Text, tt.wantText)
			}
		})
	}
}

func TestExtractExperience_Overflow(t *testing.T) {
	exp, ok := ExtractExperience("99999999999999999999999 years")
	if !ok {
		t.Fatal("expected a match")
	}
	if exp.Years != nil {
		t.Errorf("Years = %d, want nil on overflow", *exp.Years)
	}
	if exp.Text != "99999999999999999999999 years" {
		t.Errorf("Text = %q", exp.Text)
	}
}

func TestDetectSkills(t *testing.T) {
	got := DetectSkills("Must know Python and SQL", []string{"python", "sql", "java"})
	if want := []string{"python", "sql"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DetectSkills = %v, want %v", got, want)
	}
}

func TestDetectSkills_SortedAndSubstring(t *testing.T) {
	got := DetectSkills("AWS, Azure and PySpark. Power BI dashboards.", DefaultSkills)
	want := []string{"aws", "azure", "power bi", "spark"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectSkills = %v, want %v", got, want)
	}
}

func TestDetectSkills_NoneFound(t *testing.T) {
	got := DetectSkills("Retail associate", DefaultSkills)
	if got == nil || len(got) != 0 {
		t.Errorf("DetectSkills = %#v, want empty non-nil slice", got)
	}
}

func TestNormalizeVocabulary(t *testing.T) {
	got := NormalizeVocabulary([]string{" Python", "SQL", "python", "", "  ", "Go"})
	if want := []string{"python", "sql", "go"}; !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeVocabulary = %v, want %v", got, want)
	}
}

func TestEnricher_Enrich(t *testing.T) {
	e := NewEnricher([]string{"Python", "SQL", "java"})
	j := model.Job{
		Title:       "Data Engineer",
		Company:     "Acme",
		Description: "2+ years with python and sql",
		ApplyURL:    "https://a",
		Source:      model.SourceAdzuna,
	}
	before := j
	e.Enrich(&j)

	if j.Enrichment == nil {
		t.Fatal("expected enrichment")
	}
	if j.Enrichment.ExperienceYears == nil || *j.Enrichment.ExperienceYears != 2 {
		t.Errorf("ExperienceYears = %v, want 2", j.Enrichment.ExperienceYears)
	}
	if j.Enrichment.ExperienceText != "2+ years" {
		t.Errorf("ExperienceText = %q", j.Enrichment.ExperienceText)
	}
	if want := []string{"python", "sql"}; !reflect.DeepEqual(j.Enrichment.Skills, want) {
		t.Errorf("Skills = %v, want %v", j.Enrichment.Skills, want)
	}

	j.Enrichment = nil
	if !reflect.DeepEqual(j, before) {
		t.Errorf("Enrich changed other fields:\n got  %+v\n want %+v", j, before)
	}
}

func TestEnricher_NoExperience(t *testing.T) {
	e := NewEnricher(nil)
	j := model.Job{Description: "Great team, no requirements listed"}
	e.Enrich(&j)
	if j.Enrichment == nil {
		t.Fatal("expected enrichment")
	}
	if j.Enrichment.ExperienceYears != nil || j.Enrichment.ExperienceText != "" {
		t.Errorf("expected absent experience, got %+v", j.Enrichment)
	}
}

func TestNewEnricher_DefaultVocabulary(t *testing.T) {
	e := NewEnricher(nil)
	if !reflect.DeepEqual(e.Vocabulary(), DefaultSkills) {
		t.Errorf("Vocabulary = %v, want defaults", e.Vocabulary())
	}
}

func TestEnricher_EnrichAll(t *testing.T) {
	jobs := []model.Job{{Description: "sql"}, {Description: "1 year"}}
	NewEnricher(nil).EnrichAll(jobs)
	for i, j := range jobs {
		if j.Enrichment == nil {
			t.Errorf("jobs[%d] not enriched", i)
		}
	}
}
