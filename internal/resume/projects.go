package resume

import (
	"regexp"
	"strings"
)

var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`project.*?(\w[^\n.]*)`),
	regexp.MustCompile(`developed.*?(\w[^\n.]*)`),
	regexp.MustCompile(`built.*?(\w[^\n.]*)`),
	regexp.MustCompile(`created.*?(\w[^\n.]*)`),
	regexp.MustCompile(`designed.*?(\w[^\n.]*)`),
	regexp.MustCompile(`implemented.*?(\w[^\n.]*)`),
}

// ExtractProjects returns project description snippets mentioned in free
// text. A snippet runs from a trigger verb to the end of the sentence or
// line; very short matches are discarded.
func ExtractProjects(text string) map[string]struct{} {
	projects := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, pattern := range projectPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			snippet := strings.TrimSpace(match[1])
			if len(snippet) > 10 {
				projects[snippet] = struct{}{}
			}
		}
	}

	return projects
}
