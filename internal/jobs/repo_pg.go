package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new posting. Skills are stored as a JSONB array.
func (r *PGRepo) Create(ctx context.Context, posting Posting) error {
	const query = `
INSERT INTO jobs (
    id,
    title,
    description,
    summary,
    company_name,
    location_city,
    skills,
    job_type,
    level,
    work_type,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	skills, err := json.Marshal(posting.Requirements.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		posting.ID,
		posting.Title,
		posting.Description,
		nullIfEmpty(posting.Summary),
		posting.Company.Name,
		nullIfEmpty(posting.Location.City),
		skills,
		nullIfEmpty(posting.JobType),
		nullIfEmpty(posting.Level),
		nullIfEmpty(posting.WorkType),
		posting.CreatedAt,
	)
	return err
}

// GetByID returns one posting.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Posting, error) {
	const query = `
SELECT id, title, description, summary, company_name, location_city, skills, job_type, level, work_type, created_at
FROM jobs
WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	posting, err := scanPosting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Posting{}, ErrNotFound
	}
	return posting, err
}

// List returns all postings ordered by creation time.
func (r *PGRepo) List(ctx context.Context) ([]Posting, error) {
	const query = `
SELECT id, title, description, summary, company_name, location_city, skills, job_type, level, work_type, created_at
FROM jobs
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []Posting
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, posting)
	}
	return postings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (Posting, error) {
	var (
		posting   Posting
		summary   sql.NullString
		city      sql.NullString
		rawSkills []byte
		jobType   sql.NullString
		level     sql.NullString
		workType  sql.NullString
	)
	err := row.Scan(
		&posting.ID,
		&posting.Title,
		&posting.Description,
		&summary,
		&posting.Company.Name,
		&city,
		&rawSkills,
		&jobType,
		&level,
		&workType,
		&posting.CreatedAt,
	)
	if err != nil {
		return Posting{}, err
	}
	posting.Summary = summary.String
	posting.Location.City = city.String
	posting.JobType = jobType.String
	posting.Level = level.String
	posting.WorkType = workType.String
	if len(rawSkills) > 0 {
		if err := json.Unmarshal(rawSkills, &posting.Requirements.Skills); err != nil {
			return Posting{}, fmt.Errorf("unmarshal skills: %w", err)
		}
	}
	return posting, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
