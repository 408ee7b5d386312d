package match

import (
	"sort"
	"strings"

	"resume-matcher/internal/resume"
)

// SkillMatch partitions a job's required skills into exact matches,
// project-evidenced matches and missing skills. The three sets are pairwise
// disjoint and their union is the job's skill set.
type SkillMatch struct {
	MatchingSkills        []string       `json:"matching_skills"`
	ProjectMatchingSkills []string       `json:"project_matching_skills"`
	MissingSkills         []string       `json:"missing_skills"`
	MatchPercentage       float64        `json:"match_percentage"`
	SkillBreakdown        SkillBreakdown `json:"skill_breakdown"`
}

// SkillBreakdown summarizes the partition with totals.
type SkillBreakdown struct {
	ExactMatches  []string `json:"exact_matches"`
	ProjectMatch  []string `json:"project_matches"`
	MissingSkills []string `json:"missing_skills"`
	TotalRequired int      `json:"total_required"`
	TotalMatched  int      `json:"total_matched"`
}

// ScoreSkills computes the skill match between a resume and one job.
// A skill missing from the declared set still counts when it appears as a
// substring of the joined project text. An empty requirement list yields a
// zero percentage, not an error.
func ScoreSkills(resumeSkills map[string]struct{}, jobSkills []string, projects map[string]struct{}) SkillMatch {
	required := normalizeSkills(jobSkills)
	if len(required) == 0 {
		return SkillMatch{
			MatchingSkills:        []string{},
			ProjectMatchingSkills: []string{},
			MissingSkills:         []string{},
			MatchPercentage:       0,
		}
	}

	projectText := joinedProjectText(projects)

	var exact, project, missing []string
	for _, skill := range required {
		if _, ok := resumeSkills[skill]; ok {
			exact = append(exact, skill)
			continue
		}
		if projectText != "" && strings.Contains(projectText, skill) {
			project = append(project, skill)
			continue
		}
		missing = append(missing, skill)
	}

	sort.Strings(exact)
	sort.Strings(project)
	sort.Strings(missing)

	percentage := float64(len(exact)+len(project)) / float64(len(required)) * 100

	return SkillMatch{
		MatchingSkills:        emptyIfNil(exact),
		ProjectMatchingSkills: emptyIfNil(project),
		MissingSkills:         emptyIfNil(missing),
		MatchPercentage:       percentage,
		SkillBreakdown: SkillBreakdown{
			ExactMatches:  emptyIfNil(exact),
			ProjectMatch:  emptyIfNil(project),
			MissingSkills: emptyIfNil(missing),
			TotalRequired: len(required),
			TotalMatched:  len(exact) + len(project),
		},
	}
}

func normalizeSkills(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, skill := range raw {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func joinedProjectText(projects map[string]struct{}) string {
	if len(projects) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(resume.SortedSet(projects), " "))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
