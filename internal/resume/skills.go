package resume

import (
	"regexp"
	"strings"

	"resume-matcher/internal/nlp"
)

var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`experience with (\w+)`),
	regexp.MustCompile(`proficient in (\w+)`),
	regexp.MustCompile(`skilled in (\w+)`),
	regexp.MustCompile(`expertise in (\w+)`),
	regexp.MustCompile(`knowledge of (\w+)`),
	regexp.MustCompile(`familiar with (\w+)`),
	regexp.MustCompile(`worked with (\w+)`),
	regexp.MustCompile(`developed using (\w+)`),
	regexp.MustCompile(`built with (\w+)`),
	regexp.MustCompile(`created using (\w+)`),
	regexp.MustCompile(`project.*?(\w+)`),
	regexp.MustCompile(`developed.*?(\w+)`),
	regexp.MustCompile(`built.*?(\w+)`),
	regexp.MustCompile(`created.*?(\w+)`),
}

var entitySkillLabels = map[string]struct{}{
	"ORG":         {},
	"PRODUCT":     {},
	"WORK_OF_ART": {},
}

// ExtractSkills derives the skill set for a resume as the union of four
// independent passes: vocabulary scan, noun-phrase scan, entity scan and
// pattern scan. Presence is binary; no ranking is applied.
func ExtractSkills(text string, parser nlp.Parser) map[string]struct{} {
	skills := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, category := range technicalSkills {
		for _, skill := range category {
			if strings.Contains(lower, skill) {
				skills[skill] = struct{}{}
			}
		}
	}
	for _, skill := range softSkills {
		if strings.Contains(lower, skill) {
			skills[skill] = struct{}{}
		}
	}

	for _, phrase := range parser.NounPhrases(lower) {
		candidate := strings.TrimSpace(phrase)
		if len(candidate) <= 2 || len(candidate) >= 50 {
			continue
		}
		if containsStopWord(candidate) {
			continue
		}
		skills[candidate] = struct{}{}
	}

	for _, ent := range parser.Entities(text) {
		if _, ok := entitySkillLabels[ent.Label]; ok {
			skills[strings.ToLower(ent.Text)] = struct{}{}
		}
	}

	for _, pattern := range skillPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if len(match[1]) > 2 {
				skills[match[1]] = struct{}{}
			}
		}
	}

	return skills
}

func containsStopWord(phrase string) bool {
	for _, word := range phraseStopWords {
		if strings.Contains(phrase, word) {
			return true
		}
	}
	return false
}
