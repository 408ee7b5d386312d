package nlp

import (
	"reflect"
	"strings"
	"testing"
)

func TestNounPhrasesSplitsOnFunctionWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			"function word boundary",
			"worked with distributed systems for payment processing",
			[]string{"worked", "distributed systems", "payment processing"},
		},
		{
			"sentence boundary",
			"backend services. frontend dashboards",
			[]string{"backend services", "frontend dashboards"},
		},
		{
			"lower cases output",
			"Cloud Infrastructure",
			[]string{"cloud infrastructure"},
		},
		{
			"empty input",
			"",
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewHeuristicParser().NounPhrases(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEntitiesClassification(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantText  string
		wantLabel string
	}{
		{"org suffix", "I worked at Initech Systems last year", "Initech Systems", "ORG"},
		{"university", "graduated from Stanford University", "Stanford University", "ORG"},
		{"product default", "we adopted Kubernetes everywhere", "Kubernetes", "PRODUCT"},
		{"quoted work", `published "Modern Backends" in 2020`, "Modern Backends", "WORK_OF_ART"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entities := NewHeuristicParser().Entities(tc.text)
			for _, e := range entities {
				if e.Text == tc.wantText {
					if e.Label != tc.wantLabel {
						t.Fatalf("entity %q labeled %s, want %s", e.Text, e.Label, tc.wantLabel)
					}
					return
				}
			}
			t.Fatalf("entity %q not found in %v", tc.wantText, entities)
		})
	}
}

func TestEntitiesIgnoresLowercaseRuns(t *testing.T) {
	entities := NewHeuristicParser().Entities("building apis with python")
	if len(entities) != 0 {
		t.Fatalf("expected no entities, got %v", entities)
	}
}

func TestTokenizeKeepsSymbolTerms(t *testing.T) {
	phrases := NewHeuristicParser().NounPhrases("shipped c# services and c++ tooling")
	joined := strings.Join(phrases, " ")
	for _, want := range []string{"c#", "c++"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q preserved in %v", want, phrases)
		}
	}
}
