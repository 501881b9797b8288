package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/services"
)

// AdminHandler serves the session-gated management surface: job
// create/list/delete plus read-only contact and application listings.
// There is deliberately no update operation for any entity.
type AdminHandler struct {
	Jobs         *services.JobService
	Contacts     *services.ContactService
	Applications *services.ApplicationService
	Log          *zap.Logger
}

func NewAdminHandler(jobs *services.JobService, contacts *services.ContactService, apps *services.ApplicationService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{Jobs: jobs, Contacts: contacts, Applications: apps, Log: log}
}

// Dashboard is GET /admin: entity counts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	jobCount, err := h.Jobs.Count()
	if err != nil {
		h.fail(c, "job count failed", err)
		return
	}
	contactCount, err := h.Contacts.Count()
	if err != nil {
		h.fail(c, "contact count failed", err)
		return
	}
	appCount, err := h.Applications.Count()
	if err != nil {
		h.fail(c, "application count failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":         jobCount,
		"contacts":     contactCount,
		"applications": appCount,
	})
}

// ListJobs is GET /admin/jobs, newest first.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.List()
	if err != nil {
		h.fail(c, "admin job listing failed", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /admin/jobs.
func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	job, err := h.Jobs.Create(req)
	if err != nil {
		h.fail(c, "job creation failed", err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// DeleteJob is DELETE /admin/jobs/:id. Applications referencing the job
// are removed with it.
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}
	if err := h.Jobs.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		h.fail(c, "job deletion failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListContacts is GET /admin/contacts, newest first, read-only.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	contacts, err := h.Contacts.List()
	if err != nil {
		h.fail(c, "contact listing failed", err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// ListApplications is GET /admin/applications, joined with job titles,
// newest first, read-only.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.Applications.List()
	if err != nil {
		h.fail(c, "application listing failed", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *AdminHandler) fail(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
