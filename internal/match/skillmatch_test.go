package match

import (
	"reflect"
	"testing"
)

func skillSet(skills ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		out[s] = struct{}{}
	}
	return out
}

func TestScoreSkillsPartition(t *testing.T) {
	result := ScoreSkills(
		skillSet("python", "react"),
		[]string{"Python", "Docker", "Go"},
		skillSet("built docker pipelines for deployment"),
	)

	if !reflect.DeepEqual(result.MatchingSkills, []string{"python"}) {
		t.Fatalf("matching = %v", result.MatchingSkills)
	}
	if !reflect.DeepEqual(result.ProjectMatchingSkills, []string{"docker"}) {
		t.Fatalf("project matching = %v", result.ProjectMatchingSkills)
	}
	if !reflect.DeepEqual(result.MissingSkills, []string{"go"}) {
		t.Fatalf("missing = %v", result.MissingSkills)
	}
	if want := 100.0 * 2 / 3; result.MatchPercentage != want {
		t.Fatalf("percentage = %f, want %f", result.MatchPercentage, want)
	}
	if result.SkillBreakdown.TotalRequired != 3 || result.SkillBreakdown.TotalMatched != 2 {
		t.Fatalf("breakdown totals = %+v", result.SkillBreakdown)
	}
}

func TestScoreSkillsPartitionIsDisjointAndComplete(t *testing.T) {
	required := []string{"python", "docker", "kubernetes", "go", "react"}
	result := ScoreSkills(
		skillSet("python", "go"),
		required,
		skillSet("deployed services with kubernetes"),
	)

	seen := make(map[string]int)
	for _, s := range result.MatchingSkills {
		seen[s]++
	}
	for _, s := range result.ProjectMatchingSkills {
		seen[s]++
	}
	for _, s := range result.MissingSkills {
		seen[s]++
	}
	if len(seen) != len(required) {
		t.Fatalf("partition covers %d skills, want %d", len(seen), len(required))
	}
	for skill, count := range seen {
		if count != 1 {
			t.Fatalf("skill %q appears %d times across partition", skill, count)
		}
	}
}

func TestScoreSkillsEmptyRequirements(t *testing.T) {
	result := ScoreSkills(skillSet("python"), nil, nil)
	if result.MatchPercentage != 0 {
		t.Fatalf("percentage = %f, want 0", result.MatchPercentage)
	}
	if result.MatchingSkills == nil || result.MissingSkills == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

func TestScoreSkillsAllFromProjects(t *testing.T) {
	result := ScoreSkills(
		nil,
		[]string{"docker"},
		skillSet("built docker pipelines"),
	)
	if result.MatchPercentage != 100 {
		t.Fatalf("percentage = %f, want 100", result.MatchPercentage)
	}
	if len(result.MatchingSkills) != 0 {
		t.Fatalf("expected no exact matches, got %v", result.MatchingSkills)
	}
}

func TestScoreSkillsNormalizesAndDeduplicates(t *testing.T) {
	result := ScoreSkills(
		skillSet("python"),
		[]string{" Python ", "python", "PYTHON", ""},
		nil,
	)
	if result.SkillBreakdown.TotalRequired != 1 {
		t.Fatalf("total required = %d, want 1", result.SkillBreakdown.TotalRequired)
	}
	if result.MatchPercentage != 100 {
		t.Fatalf("percentage = %f, want 100", result.MatchPercentage)
	}
}
