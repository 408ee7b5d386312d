// Package jobs provides job postings to the matching pipeline: either
// fetched from an upstream job board API or served from a local store.
package jobs

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = errors.New("job not found")

// Posting is one job record. The matching core treats it as read-only.
type Posting struct {
	ID           string       `json:"_id,omitempty"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Summary      string       `json:"summary,omitempty"`
	Company      Company      `json:"company"`
	Location     Location     `json:"location"`
	Requirements Requirements `json:"requirements"`
	JobType      string       `json:"jobType,omitempty"`
	Level        string       `json:"level,omitempty"`
	WorkType     string       `json:"workType,omitempty"`
	CreatedAt    time.Time    `json:"createdAt,omitempty"`
}

// Company identifies the posting employer.
type Company struct {
	Name string `json:"name"`
}

// Location is the posting's primary location.
type Location struct {
	City string `json:"city"`
}

// Requirements carries the skill list used by the skill match scorer.
type Requirements struct {
	Skills []string `json:"skills"`
}
