// Package match implements the scoring pipeline: corpus building, TF-IDF
// text similarity, skill-set matching, experience-level matching and the
// combined recommendation ranking.
package match

import (
	"strings"

	"resume-matcher/internal/jobs"
)

// BuildCorpus flattens each posting into one normalized lower-cased text
// blob, in input order. Missing fields contribute nothing and never fail.
func BuildCorpus(postings []jobs.Posting) []string {
	corpus := make([]string, 0, len(postings))
	for _, job := range postings {
		parts := []string{
			job.Title,
			job.Description,
			job.Summary,
			strings.Join(job.Requirements.Skills, " "),
			job.Company.Name,
			job.Location.City,
			job.JobType,
			job.Level,
			job.WorkType,
		}
		corpus = append(corpus, strings.ToLower(strings.Join(parts, " ")))
	}
	return corpus
}
