// Package analysis orchestrates one resume request: text extraction output
// is profiled, jobs are fetched, and the match pipeline ranks them.
package analysis

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-matcher/internal/jobs"
	"resume-matcher/internal/match"
	"resume-matcher/internal/nlp"
	"resume-matcher/internal/resume"
	"resume-matcher/internal/shared/storage/object"
	"resume-matcher/internal/shared/telemetry"
)

// Service runs resume analysis and job matching. All computation is
// request-scoped and synchronous; only the static vocabularies are shared
// across requests.
type Service struct {
	Jobs   jobs.Source
	Parser nlp.Parser
	Store  object.ObjectStore
	TopN   int
}

// Outcome is the result of a full match request.
type Outcome struct {
	Profile           resume.Profile
	Recommendations   []match.Recommendation
	TotalJobsAnalyzed int
}

// Analyze builds the resume profile. Total over text: empty or malformed
// input produces an empty profile.
func (s *Service) Analyze(text string) resume.Profile {
	return resume.BuildProfile(text, s.parser())
}

// Match profiles the resume, fetches the job list and ranks it. A failing
// job source degrades to zero jobs; the resume analysis itself still
// succeeds.
func (s *Service) Match(ctx context.Context, text string) Outcome {
	profile := s.Analyze(text)

	postings := s.fetchJobs(ctx)
	recommendations := match.Rank(match.RankInput{
		ResumeText: text,
		Profile:    profile,
		Jobs:       postings,
		TopN:       s.TopN,
	})

	return Outcome{
		Profile:           profile,
		Recommendations:   recommendations,
		TotalJobsAnalyzed: len(postings),
	}
}

// Archive stores the uploaded document and its extracted text for later
// inspection. Best-effort: failures are logged, never surfaced.
func (s *Service) Archive(ctx context.Context, requestID, fileName string, document io.Reader, text string) {
	if s.Store == nil {
		return
	}
	key, _, _, err := s.Store.Save(ctx, requestID, fileName, document)
	if err != nil {
		telemetry.Error("archive.failed", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return
	}
	if _, err := s.Store.SaveWithKey(ctx, key+".extracted.txt", "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		telemetry.Error("archive.failed", map[string]any{
			"request_id": requestID,
			"error":      fmt.Sprintf("extracted text: %v", err),
		})
	}
}

func (s *Service) fetchJobs(ctx context.Context) []jobs.Posting {
	if s.Jobs == nil {
		return nil
	}
	start := time.Now()
	postings, err := s.Jobs.List(ctx)
	if err != nil {
		telemetry.Error("jobs.fetch_failed", map[string]any{
			"error":       err.Error(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})
		return nil
	}
	return postings
}

func (s *Service) parser() nlp.Parser {
	if s.Parser != nil {
		return s.Parser
	}
	return nlp.NewHeuristicParser()
}
