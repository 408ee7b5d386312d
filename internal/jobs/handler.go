package jobs

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-matcher/internal/shared/server/respond"
)

// Handler exposes the local job board over HTTP.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.POST("/jobs", h.create)
}

func (h *Handler) list(c *gin.Context) {
	postings, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	if postings == nil {
		postings = []Posting{}
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"success": true,
		"count":   len(postings),
		"data":    postings,
	})
}

func (h *Handler) get(c *gin.Context) {
	posting, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"success": true, "data": posting})
}

func (h *Handler) create(c *gin.Context) {
	var posting Posting
	if err := c.ShouldBindJSON(&posting); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	posting.Title = strings.TrimSpace(posting.Title)
	posting.Description = strings.TrimSpace(posting.Description)
	posting.Company.Name = strings.TrimSpace(posting.Company.Name)

	if posting.Title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}
	if posting.Description == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "description is required", nil)
		return
	}
	if posting.Company.Name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "company.name is required", nil)
		return
	}

	if posting.ID == "" {
		posting.ID = uuid.NewString()
	}
	if posting.CreatedAt.IsZero() {
		posting.CreatedAt = time.Now().UTC()
	}

	if err := h.Repo.Create(c.Request.Context(), posting); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"success": true, "data": posting})
}
