package resume

import (
	"regexp"
	"strings"
)

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`bachelor'?s?\s*of\s*(\w+)`),
	regexp.MustCompile(`master'?s?\s*of\s*(\w+)`),
	regexp.MustCompile(`phd\s*in\s*(\w+)`),
	regexp.MustCompile(`doctorate\s*in\s*(\w+)`),
	regexp.MustCompile(`associate'?s?\s*degree\s*in\s*(\w+)`),
	regexp.MustCompile(`(\w+)\s*degree`),
	regexp.MustCompile(`(\w+)\s*diploma`),
}

var degreeStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {},
}

// ExtractEducation pulls degree subjects from free text. Total over input:
// malformed or empty text yields an empty set.
func ExtractEducation(text string) map[string]struct{} {
	education := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			subject := match[1]
			if _, stop := degreeStopWords[subject]; stop {
				continue
			}
			education[subject] = struct{}{}
		}
	}

	return education
}
