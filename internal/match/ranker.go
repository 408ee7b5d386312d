package match

import (
	"math"
	"sort"
	"strings"

	"resume-matcher/internal/jobs"
	"resume-matcher/internal/resume"
)

// DefaultTopN is the number of recommendations returned when the caller
// does not specify one.
const DefaultTopN = 5

// Combined score weights.
const (
	weightTFIDF      = 0.3
	weightSkills     = 0.4
	weightExperience = 0.2
	weightBonus      = 0.1
)

const (
	projectBonusPerSkill = 0.05
	projectBonusCap      = 0.2
)

// Recommendation is one ranked job with its score breakdown. Field names
// follow the matching API's wire format.
type Recommendation struct {
	Job              jobs.Posting     `json:"job"`
	Similarity       float64          `json:"similarity"`
	SkillMatch       SkillMatch       `json:"skill_match"`
	ExperienceMatch  ExperienceMatch  `json:"experience_match"`
	ProjectBonus     float64          `json:"project_bonus"`
	TFIDFScore       float64          `json:"tfidf_score"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
}

// DetailedAnalysis restates the component scores on a 0-100 scale.
type DetailedAnalysis struct {
	TextSimilarity           float64 `json:"text_similarity"`
	SkillMatchPercentage     float64 `json:"skill_match_percentage"`
	ExperienceMatchPercent   float64 `json:"experience_match_percentage"`
	ProjectSkillMatches      int     `json:"project_skill_matches"`
}

// RankInput carries everything the ranker needs for one request.
type RankInput struct {
	ResumeText string
	Profile    resume.Profile
	Jobs       []jobs.Posting
	TopN       int
}

// Rank scores every job against the resume and returns the top N by
// combined score, descending, ties resolved by original job order. An empty
// job list short-circuits before the vectorizer is ever built.
func Rank(in RankInput) []Recommendation {
	if len(in.Jobs) == 0 {
		return []Recommendation{}
	}

	topN := in.TopN
	if topN == 0 {
		topN = DefaultTopN
	}
	if topN < 0 {
		topN = 0
	}

	docs := BuildCorpus(in.Jobs)
	docs = append(docs, strings.ToLower(in.ResumeText))
	vectors := Vectorizer{MaxFeatures: defaultMaxFeatures}.FitTransform(docs)
	resumeVec := vectors[len(vectors)-1]

	recommendations := make([]Recommendation, 0, len(in.Jobs))
	for idx, job := range in.Jobs {
		tfidf := CosineSimilarity(resumeVec, vectors[idx])
		skills := ScoreSkills(in.Profile.Skills, job.Requirements.Skills, in.Profile.Projects)
		experience := ScoreExperience(job.Level, in.Profile.ExperienceLevel)
		bonus := projectBonus(job.Requirements.Skills, in.Profile.Projects)

		skillScore := skills.MatchPercentage / 100
		combined := (tfidf*weightTFIDF + skillScore*weightSkills +
			experience.Score*weightExperience + bonus*weightBonus) * 100

		recommendations = append(recommendations, Recommendation{
			Job:             job,
			Similarity:      combined,
			SkillMatch:      skills,
			ExperienceMatch: experience,
			ProjectBonus:    bonus,
			TFIDFScore:      tfidf * 100,
			DetailedAnalysis: DetailedAnalysis{
				TextSimilarity:         tfidf * 100,
				SkillMatchPercentage:   skills.MatchPercentage,
				ExperienceMatchPercent: experience.Score * 100,
				ProjectSkillMatches:    len(skills.ProjectMatchingSkills),
			},
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Similarity > recommendations[j].Similarity
	})

	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}
	return recommendations
}

// projectBonus awards a capped increment for each required skill evidenced
// in the project text.
func projectBonus(jobSkills []string, projects map[string]struct{}) float64 {
	if len(jobSkills) == 0 || len(projects) == 0 {
		return 0
	}
	projectText := joinedProjectText(projects)
	hits := 0
	for _, skill := range normalizeSkills(jobSkills) {
		if strings.Contains(projectText, skill) {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	return math.Min(projectBonusCap, float64(hits)*projectBonusPerSkill)
}
