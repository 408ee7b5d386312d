package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Source yields the postings a match request ranks against.
type Source interface {
	List(ctx context.Context) ([]Posting, error)
}

// APISource fetches postings from an upstream job board API that returns
// a JSON array under a "data" key.
type APISource struct {
	BaseURL string
	Client  *http.Client
}

// NewAPISource constructs an APISource against the given base URL.
func NewAPISource(baseURL string) *APISource {
	return &APISource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// List fetches all postings. Transport errors and non-200 responses are
// returned as errors; the caller decides whether to degrade.
func (s *APISource) List(ctx context.Context) ([]Posting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/jobs", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch jobs: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Data []Posting `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fetch jobs: decode: %w", err)
	}

	return payload.Data, nil
}

// RepoSource serves postings from a local repository.
type RepoSource struct {
	Repo Repo
}

// List returns all stored postings.
func (s *RepoSource) List(ctx context.Context) ([]Posting, error) {
	return s.Repo.List(ctx)
}
