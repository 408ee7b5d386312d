package match

import (
	"fmt"

	"resume-matcher/internal/resume"
)

// ExperienceMatch scores how well the resume's seniority fits a job's
// declared level.
type ExperienceMatch struct {
	Score       float64 `json:"score"`
	Reason      string  `json:"reason"`
	JobLevel    string  `json:"job_level"`
	ResumeLevel string  `json:"resume_level"`
}

type experienceRule struct {
	applies func(job, res resume.Level) bool
	score   func(job, res resume.Level) float64
	reason  func(job, res resume.Level) string
}

func fixedScore(v float64) func(resume.Level, resume.Level) float64 {
	return func(resume.Level, resume.Level) float64 { return v }
}

// Ordered rules, first match wins. The second rule duplicates the
// entry-equals-entry case already covered by the first; it is kept to
// preserve the externally observable reason ordering.
var experienceRules = []experienceRule{
	{
		applies: func(job, res resume.Level) bool { return job == res },
		score:   fixedScore(1.0),
		reason: func(job, _ resume.Level) string {
			return fmt.Sprintf("Perfect match: %s level", job)
		},
	},
	{
		applies: func(job, res resume.Level) bool {
			return job == resume.LevelEntry && res == resume.LevelEntry
		},
		score: fixedScore(1.0),
		reason: func(_, _ resume.Level) string {
			return "Entry level match"
		},
	},
	{
		applies: func(job, res resume.Level) bool {
			if !res.Valid() {
				return false
			}
			switch job {
			case resume.LevelSenior:
				return res.Rank() >= resume.LevelSenior.Rank()
			case resume.LevelMid:
				return res.Rank() >= resume.LevelMid.Rank()
			case resume.LevelEntry:
				return true
			default:
				return false
			}
		},
		score: fixedScore(0.8),
		reason: func(job, res resume.Level) string {
			return fmt.Sprintf("Good match: %s applying for %s", res, job)
		},
	},
	{
		applies: func(_, res resume.Level) bool { return res == resume.LevelEntry },
		score: func(job, _ resume.Level) float64 {
			if job == resume.LevelEntry {
				return 0.9
			}
			return 0.3
		},
		reason: func(job, _ resume.Level) string {
			return fmt.Sprintf("Entry level recommended: %s job", job)
		},
	},
	{
		applies: func(_, _ resume.Level) bool { return true },
		score:   fixedScore(0.5),
		reason: func(job, res resume.Level) string {
			return fmt.Sprintf("Partial match: %s for %s", res, job)
		},
	},
}

// ScoreExperience evaluates the rule table in order against the job's
// declared level and the resume's estimated level. A job without a declared
// level is treated as mid.
func ScoreExperience(jobLevel string, resumeLevel resume.Level) ExperienceMatch {
	job := resume.Level(jobLevel)
	if jobLevel == "" {
		job = resume.LevelMid
	}

	for _, rule := range experienceRules {
		if rule.applies(job, resumeLevel) {
			return ExperienceMatch{
				Score:       rule.score(job, resumeLevel),
				Reason:      rule.reason(job, resumeLevel),
				JobLevel:    string(job),
				ResumeLevel: string(resumeLevel),
			}
		}
	}

	// Unreachable: the last rule always applies.
	return ExperienceMatch{JobLevel: string(job), ResumeLevel: string(resumeLevel)}
}
