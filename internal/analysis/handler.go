package analysis

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/match"
	"resume-matcher/internal/resume"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/telemetry"
)

const (
	maxUploadBytes       = 10 << 20
	extractedTextPreview = 1000
)

// Handler serves the matching endpoints.
type Handler struct {
	Service *Service

	// ArchiveUploads persists the uploaded file and extracted text
	// through the service's object store.
	ArchiveUploads bool
}

// RegisterRoutes mounts the matching endpoints on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
	rg.POST("/analyze-resume", h.analyzeOnly)
}

type resumeAnalysisPayload struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	ExperienceLevel string   `json:"experience_level"`
	Education       []string `json:"education"`
	Achievements    []string `json:"achievements"`
	Projects        []string `json:"projects"`
	TextLength      int      `json:"text_length"`
}

type analysisSummaryPayload struct {
	SkillsDetected      int  `json:"skills_detected"`
	ProjectsFound       int  `json:"projects_found"`
	ExperienceDetected  bool `json:"experience_detected"`
	RecommendationCount int  `json:"recommendation_count"`
}

type matchResponse struct {
	Success           bool                   `json:"success"`
	ResumeAnalysis    resumeAnalysisPayload  `json:"resume_analysis"`
	Recommendations   []match.Recommendation `json:"recommendations"`
	TotalJobsAnalyzed int                    `json:"total_jobs_analyzed"`
	AnalysisSummary   analysisSummaryPayload `json:"analysis_summary"`
}

type analyzeOnlyPayload struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	ExperienceLevel string   `json:"experience_level"`
	Education       []string `json:"education"`
	Achievements    []string `json:"achievements"`
	TextLength      int      `json:"text_length"`
	ExtractedText   string   `json:"extracted_text"`
}

type analyzeOnlyResponse struct {
	Success  bool               `json:"success"`
	Analysis analyzeOnlyPayload `json:"analysis"`
}

func (h *Handler) match(c *gin.Context) {
	metrics.IncMatchStarted()
	start := metrics.NowMillis()

	text, ok := h.extractUpload(c)
	if !ok {
		metrics.IncMatchFailed()
		return
	}

	outcome := h.Service.Match(c.Request.Context(), text)

	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)

	respond.OK(c, matchResponse{
		Success:           true,
		ResumeAnalysis:    analysisPayload(outcome.Profile),
		Recommendations:   outcome.Recommendations,
		TotalJobsAnalyzed: outcome.TotalJobsAnalyzed,
		AnalysisSummary: analysisSummaryPayload{
			SkillsDetected:      len(outcome.Profile.Skills),
			ProjectsFound:       len(outcome.Profile.Projects),
			ExperienceDetected:  outcome.Profile.ExperienceYears > 0,
			RecommendationCount: len(outcome.Recommendations),
		},
	})
}

func (h *Handler) analyzeOnly(c *gin.Context) {
	text, ok := h.extractUpload(c)
	if !ok {
		return
	}

	profile := h.Service.Analyze(text)

	respond.OK(c, analyzeOnlyResponse{
		Success: true,
		Analysis: analyzeOnlyPayload{
			Skills:          resume.SortedSet(profile.Skills),
			ExperienceYears: profile.ExperienceYears,
			ExperienceLevel: string(profile.ExperienceLevel),
			Education:       resume.SortedSet(profile.Education),
			Achievements:    emptyIfNilSlice(profile.Achievements),
			TextLength:      profile.TextLength,
			ExtractedText:   previewText(text),
		},
	})
}

// extractUpload pulls the multipart resume file through a temp file and
// returns its extracted text. On failure it writes the error response and
// returns ok=false. The temp file is removed on every path.
func (h *Handler) extractUpload(c *gin.Context) (string, bool) {
	header, err := c.FormFile("resume")
	if err != nil {
		respond.Failure(c, http.StatusBadRequest, "No resume file uploaded")
		return "", false
	}
	if strings.TrimSpace(header.Filename) == "" {
		respond.Failure(c, http.StatusBadRequest, "No file selected")
		return "", false
	}
	if header.Size > maxUploadBytes {
		respond.Failure(c, http.StatusBadRequest, "Resume file too large")
		return "", false
	}

	tmpPath, err := saveTemp(header)
	if tmpPath != "" {
		defer os.Remove(tmpPath)
	}
	if err != nil {
		telemetry.Error("upload.save_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		respond.Failure(c, http.StatusInternalServerError, "Error processing resume")
		return "", false
	}

	text := extract.FromFile(tmpPath)
	if strings.TrimSpace(text) == "" {
		respond.Failure(c, http.StatusBadRequest, "Could not extract text from resume")
		return "", false
	}

	if h.ArchiveUploads {
		if f, err := os.Open(tmpPath); err == nil {
			h.Service.Archive(c.Request.Context(), middleware.RequestIDFromContext(c), header.Filename, f, text)
			f.Close()
		}
	}

	return text, true
}

func saveTemp(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	tmp, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return tmp.Name(), err
	}
	if err := tmp.Close(); err != nil {
		return tmp.Name(), err
	}
	return tmp.Name(), nil
}

func analysisPayload(profile resume.Profile) resumeAnalysisPayload {
	return resumeAnalysisPayload{
		Skills:          resume.SortedSet(profile.Skills),
		ExperienceYears: profile.ExperienceYears,
		ExperienceLevel: string(profile.ExperienceLevel),
		Education:       resume.SortedSet(profile.Education),
		Achievements:    emptyIfNilSlice(profile.Achievements),
		Projects:        resume.SortedSet(profile.Projects),
		TextLength:      profile.TextLength,
	}
}

func previewText(text string) string {
	if len(text) > extractedTextPreview {
		return text[:extractedTextPreview] + "..."
	}
	return text
}

func emptyIfNilSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
