package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresSkillsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	posting := Posting{
		ID:          "job-1",
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Summary:     "Go backend role",
		Company:     Company{Name: "Acme"},
		Location:    Location{City: "Berlin"},
		Requirements: Requirements{
			Skills: []string{"go", "postgresql"},
		},
		JobType:   "full-time",
		Level:     "senior",
		WorkType:  "remote",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO jobs").
		WithArgs(
			posting.ID,
			posting.Title,
			posting.Description,
			posting.Summary,
			posting.Company.Name,
			posting.Location.City,
			[]byte(`["go","postgresql"]`),
			posting.JobType,
			posting.Level,
			posting.WorkType,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), posting); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateNullsOptionalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	posting := Posting{
		ID:          "job-2",
		Title:       "Engineer",
		Description: "desc",
		Company:     Company{Name: "Acme"},
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO jobs").
		WithArgs(
			posting.ID,
			posting.Title,
			posting.Description,
			nil, // summary
			posting.Company.Name,
			nil, // location_city
			[]byte(`null`),
			nil, // job_type
			nil, // level
			nil, // work_type
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), posting); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, title, description").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(postingColumns()))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListScansPostings(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(postingColumns()).
		AddRow("job-1", "Backend Engineer", "Build APIs", "summary", "Acme", "Berlin",
			[]byte(`["go","postgresql"]`), "full-time", "senior", "remote", created).
		AddRow("job-2", "Data Engineer", "Pipelines", nil, "Initech", nil,
			[]byte(`[]`), nil, nil, nil, created)

	mock.ExpectQuery("ORDER BY created_at ASC").
		WillReturnRows(rows)

	postings, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}
	if postings[0].ID != "job-1" || postings[0].Requirements.Skills[1] != "postgresql" {
		t.Fatalf("unexpected first posting: %+v", postings[0])
	}
	if postings[1].Summary != "" || postings[1].Level != "" {
		t.Fatalf("expected null columns scanned as empty, got %+v", postings[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func postingColumns() []string {
	return []string{
		"id", "title", "description", "summary", "company_name", "location_city",
		"skills", "job_type", "level", "work_type", "created_at",
	}
}
