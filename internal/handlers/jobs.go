package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
	Log  *zap.Logger
}

func NewJobHandler(jobs *services.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, Log: log}
}

// List is the public GET /api/jobs endpoint: every open role, newest
// first, requirements expanded to a list.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Jobs.List()
	if err != nil {
		h.Log.Error("job listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}
