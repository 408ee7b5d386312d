// Package resume turns raw resume text into a structured profile using
// static vocabularies and pattern heuristics. Every extractor is total over
// text: malformed or empty input yields empty results, never an error.
package resume

import (
	"sort"

	"resume-matcher/internal/nlp"
)

// Profile is the structured view of one resume. Built once per request and
// immutable afterwards.
type Profile struct {
	Skills          map[string]struct{}
	ExperienceYears int
	ExperienceLevel Level
	Education       map[string]struct{}
	Achievements    []string
	Projects        map[string]struct{}
	TextLength      int
}

// BuildProfile runs all extraction passes over the resume text.
func BuildProfile(text string, parser nlp.Parser) Profile {
	years, level := EstimateExperience(text)
	return Profile{
		Skills:          ExtractSkills(text, parser),
		ExperienceYears: years,
		ExperienceLevel: level,
		Education:       ExtractEducation(text),
		Achievements:    ExtractAchievements(text),
		Projects:        ExtractProjects(text),
		TextLength:      len(text),
	}
}

// SortedSet returns the set's members sorted ascending, for deterministic
// JSON output.
func SortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
