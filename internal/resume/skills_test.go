package resume

import (
	"reflect"
	"testing"

	"resume-matcher/internal/nlp"
)

func hasSkill(set map[string]struct{}, skill string) bool {
	_, ok := set[skill]
	return ok
}

func TestExtractSkillsFindsVocabularyTerms(t *testing.T) {
	text := "5 years of experience with Python and React, built a Django project"
	skills := ExtractSkills(text, nlp.NewHeuristicParser())

	for _, want := range []string{"python", "react", "django"} {
		if !hasSkill(skills, want) {
			t.Fatalf("expected skill %q in %v", want, SortedSet(skills))
		}
	}
}

func TestExtractSkillsMatchesPatternCaptures(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"experience with", "I have experience with kubernetes at scale", "kubernetes"},
		{"proficient in", "Proficient in golang and distributed systems", "golang"},
		{"knowledge of", "Strong knowledge of terraform modules", "terraform"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skills := ExtractSkills(tc.text, nlp.NewHeuristicParser())
			if !hasSkill(skills, tc.want) {
				t.Fatalf("expected %q in %v", tc.want, SortedSet(skills))
			}
		})
	}
}

func TestExtractSkillsSkipsStopWordPhrases(t *testing.T) {
	skills := ExtractSkills("worked with the team on many things", nlp.NewHeuristicParser())
	for skill := range skills {
		if containsStopWord(skill) {
			t.Fatalf("stop-word phrase leaked into skills: %q", skill)
		}
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	skills := ExtractSkills("", nlp.NewHeuristicParser())
	if len(skills) != 0 {
		t.Fatalf("expected no skills for empty text, got %v", SortedSet(skills))
	}
}

func TestExtractSkillsDeterministic(t *testing.T) {
	text := "Senior engineer skilled in Java, Spring, PostgreSQL and AWS. Built CI/CD pipelines with Jenkins and Docker."
	first := SortedSet(ExtractSkills(text, nlp.NewHeuristicParser()))
	for i := 0; i < 5; i++ {
		again := SortedSet(ExtractSkills(text, nlp.NewHeuristicParser()))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}
