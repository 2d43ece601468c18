// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httpapi exposes the pain-point service over HTTP.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdiddy/painpoint-engine/internal/ingest"
	"github.com/pdiddy/painpoint-engine/internal/query"
	"github.com/pdiddy/painpoint-engine/internal/store"
)

// Query parameter defaults for GET /pain-points.
const (
	defaultPage      = 1
	defaultLimit     = 10
	defaultSortBy    = query.SortByDate
	defaultSortOrder = query.OrderDesc
)

// Handlers carries the wired dependencies for all routes.
type Handlers struct {
	store    *store.Service
	pipeline *ingest.Pipeline
	log      *zap.SugaredLogger
}

// NewHandlers wires the handler set.
func NewHandlers(st *store.Service, pipeline *ingest.Pipeline, log *zap.SugaredLogger) *Handlers {
	return &Handlers{store: st, pipeline: pipeline, log: log}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// ListPainPoints handles GET /pain-points: filter, sort, and paginate the
// record set.
func (h *Handlers) ListPainPoints(c *gin.Context) {
	opts := query.Options{
		Category:  c.Query("category"),
		Liked:     c.Query("liked"),
		SortBy:    c.DefaultQuery("sortBy", defaultSortBy),
		SortOrder: c.DefaultQuery("sortOrder", defaultSortOrder),
		Page:      intQuery(c, "page", defaultPage),
		Limit:     intQuery(c, "limit", defaultLimit),
	}

	records, err := h.store.Load(c.Request.Context())
	if err != nil {
		h.log.Errorw("loading records failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	result, err := query.Apply(records, opts)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// updateRequest is the POST /pain-points body.
type updateRequest struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// UpdatePainPoint handles POST /pain-points: like, unlike, or clear one record.
func (h *Handlers) UpdatePainPoint(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Action == "" || req.ID == "" {
		respondError(c, http.StatusBadRequest, "action and id are required")
		return
	}

	updated, err := h.store.Apply(c.Request.Context(), req.ID, store.Action(req.Action))
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, "pain point not found")
		return
	case errors.Is(err, store.ErrInvalidAction):
		respondError(c, http.StatusBadRequest, "invalid action")
		return
	case err != nil:
		h.log.Errorw("updating record failed", "id", req.ID, "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "pain point updated successfully",
		"painPoint": updated,
	})
}

// ListCategories handles GET /categories.
func (h *Handlers) ListCategories(c *gin.Context) {
	categories, err := h.store.Categories(c.Request.Context())
	if err != nil {
		h.log.Errorw("loading categories failed", "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// scrapeRequest is the POST /scrape body.
type scrapeRequest struct {
	Channels  []string `json:"channels"`
	SinceYear int      `json:"since_year"`
}

// Scrape handles POST /scrape: run the ingestion pipeline once.
func (h *Handlers) Scrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Channels) == 0 {
		respondError(c, http.StatusBadRequest, "channels are required")
		return
	}

	var since time.Time
	if req.SinceYear > 0 {
		since = time.Date(req.SinceYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	result, err := h.pipeline.Run(c.Request.Context(), req.Channels, since)
	if err != nil {
		h.log.Errorw("ingestion failed", "channels", req.Channels, "error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, result)
}

// intQuery parses an integer query parameter, falling back on absence or
// garbage. Range validation is the query engine's job.
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
