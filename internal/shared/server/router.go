package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analysis"
	"resume-matcher/internal/jobs"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/storage/db"
	"resume-matcher/internal/shared/storage/object"
	localstore "resume-matcher/internal/shared/storage/object/local"
	s3store "resume-matcher/internal/shared/storage/object/s3"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := newObjectStore(cfg)

	var jobRepo jobs.Repo
	var source jobs.Source
	if cfg.JobsSource == "local" {
		jobRepo = newJobRepo(cfg)
		source = &jobs.RepoSource{Repo: jobRepo}
	} else {
		source = jobs.NewAPISource(cfg.BackendAPIURL)
	}

	svc := &analysis.Service{
		Jobs:  source,
		Store: store,
		TopN:  cfg.TopN,
	}
	handler := &analysis.Handler{
		Service:        svc,
		ArchiveUploads: cfg.ArchiveUploads,
	}

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "resume matcher running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"features": gin.H{
				"resume_analysis":     true,
				"skill_extraction":    true,
				"job_matching":        true,
				"experience_analysis": true,
			},
		})
	})

	ml := r.Group("/ml")
	handler.RegisterRoutes(ml)

	if jobRepo != nil {
		api := r.Group("/api/v1")
		jobsHandler := &jobs.Handler{Repo: jobRepo}
		jobsHandler.RegisterRoutes(api)
	}

	if cfg.Env == "dev" {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

// newObjectStore builds the archive store from config. S3 setup failures
// fall back to the local store so uploads keep working.
func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir)
}

// newJobRepo connects Postgres when configured and falls back to the
// in-memory repo on any connection or migration failure.
func newJobRepo(cfg config.Config) jobs.Repo {
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			conn.Close()
		} else {
			return &jobs.PGRepo{DB: conn}
		}
	}
	return jobs.NewMemoryRepo()
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
