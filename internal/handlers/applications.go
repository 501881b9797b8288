package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/services"
	"github.com/ramanuj-ai/ramanuj-site/internal/uploads"
	"github.com/ramanuj-ai/ramanuj-site/internal/validation"
)

type ApplicationHandler struct {
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Uploads      *uploads.Store
	Log          *zap.Logger
}

func NewApplicationHandler(jobs *services.JobService, apps *services.ApplicationService, store *uploads.Store, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{Jobs: jobs, Applications: apps, Uploads: store, Log: log}
}

// Create is the public POST /api/applications endpoint. Multipart form
// with fields jobId, name, email, phone, coverLetter and an optional
// "resume" PDF. The résumé hits disk only after the job is confirmed to
// exist, and is removed again if the row fails to persist, so a failed
// request never leaves an orphaned file behind a stored record.
func (h *ApplicationHandler) Create(c *gin.Context) {
	sub := dtos.ApplicationSubmission{
		JobID:       formField(c, "jobId", "job_id"),
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		CoverLetter: formField(c, "coverLetter", "cover_letter"),
	}

	fh, err := c.FormFile("resume")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File upload error"})
		return
	}
	if fh != nil {
		sub.ResumeType = fh.Header.Get("Content-Type")
	}

	h.Log.Info("incoming application",
		zap.String("jobId", sub.JobID),
		zap.Bool("hasFile", fh != nil),
		zap.Bool("hasCoverLetter", sub.CoverLetter != ""),
	)

	if missing := validation.MissingApplicationFields(sub); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "missing": missing})
		return
	}
	if errs := validation.ValidateApplication(sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": firstError(errs, "jobId", "name", "email", "phone", "resume")})
		return
	}

	jobID, err := strconv.ParseUint(strings.TrimSpace(sub.JobID), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jobId"})
		return
	}
	exists, err := h.Jobs.Exists(uint(jobID))
	if err != nil {
		h.Log.Error("job lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	var resumePath *string
	if fh != nil {
		stored, err := h.Uploads.Save(fh)
		switch {
		case errors.Is(err, uploads.ErrNotPDF), errors.Is(err, uploads.ErrTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			h.Log.Error("resume storage failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		resumePath = &stored
	}

	if _, err := h.Applications.Create(uint(jobID), sub, resumePath); err != nil {
		if resumePath != nil {
			if rmErr := h.Uploads.Remove(*resumePath); rmErr != nil {
				h.Log.Warn("orphaned resume cleanup failed", zap.String("path", *resumePath), zap.Error(rmErr))
			}
		}
		h.Log.Error("application submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// formField returns the first non-empty value among the given form
// keys. The intake accepts both camelCase and snake_case field names.
func formField(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.PostForm(key); v != "" {
			return v
		}
	}
	return ""
}
