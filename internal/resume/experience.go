package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// Level is an ordinal seniority category.
type Level string

const (
	LevelEntry     Level = "entry"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelLead      Level = "lead"
	LevelExecutive Level = "executive"
)

var levelRank = map[Level]int{
	LevelEntry:     0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelLead:      3,
	LevelExecutive: 4,
}

// Rank returns the position of the level in the ordering
// entry < mid < senior < lead < executive. Unknown levels rank lowest.
func (l Level) Rank() int {
	return levelRank[l]
}

// Valid reports whether the level is one of the known categories.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*of?\s*experience`),
	regexp.MustCompile(`experience\s*of?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*working`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*as`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*developing`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*programming`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*software`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*web`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*data`),
}

// Indicator phrases checked only when no numeric year mention exists.
// Order matters: the first level with any matching indicator wins.
var experienceIndicators = []struct {
	level      Level
	indicators []string
}{
	{LevelEntry, []string{"intern", "internship", "student", "graduate", "entry level", "junior"}},
	{LevelMid, []string{"mid level", "intermediate", "2-3 years", "3-4 years"}},
	{LevelSenior, []string{"senior", "lead", "5+ years", "6+ years", "7+ years"}},
	{LevelLead, []string{"lead", "team lead", "technical lead", "8+ years", "9+ years"}},
	{LevelExecutive, []string{"executive", "director", "manager", "10+ years", "15+ years"}},
}

// EstimateExperience scans text for explicit year-of-experience mentions and
// returns the maximum found together with the derived level. When no numeric
// mention exists, indicator phrases set the level instead. Explicit years
// always override indicators.
func EstimateExperience(text string) (int, Level) {
	lower := strings.ToLower(text)

	years := 0
	for _, pattern := range yearPatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if n > years {
				years = n
			}
		}
	}

	if years == 0 {
		for _, group := range experienceIndicators {
			if anyContains(lower, group.indicators) {
				return 0, group.level
			}
		}
	}

	return years, levelFromYears(years)
}

func levelFromYears(years int) Level {
	switch {
	case years >= 10:
		return LevelExecutive
	case years >= 7:
		return LevelLead
	case years >= 4:
		return LevelSenior
	case years >= 2:
		return LevelMid
	default:
		return LevelEntry
	}
}

func anyContains(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
