package resume

import (
	"regexp"
	"strings"
)

var achievementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`increased\s+(\w+)\s+by\s+(\d+)%`),
	regexp.MustCompile(`reduced\s+(\w+)\s+by\s+(\d+)%`),
	regexp.MustCompile(`improved\s+(\w+)\s+by\s+(\d+)%`),
	regexp.MustCompile(`led\s+(\w+)\s+team\s+of\s+(\d+)`),
	regexp.MustCompile(`managed\s+(\w+)\s+budget\s+of\s+\$?(\d+)`),
	regexp.MustCompile(`developed\s+(\w+)\s+application`),
	regexp.MustCompile(`built\s+(\w+)\s+system`),
	regexp.MustCompile(`created\s+(\w+)\s+platform`),
}

// ExtractAchievements returns quantified accomplishments in the order the
// patterns match. Multi-group matches are space-joined.
func ExtractAchievements(text string) []string {
	var achievements []string
	lower := strings.ToLower(text)

	for _, pattern := range achievementPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			achievements = append(achievements, strings.Join(match[1:], " "))
		}
	}

	return achievements
}
