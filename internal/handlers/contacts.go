package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ramanuj-ai/ramanuj-site/internal/dtos"
	"github.com/ramanuj-ai/ramanuj-site/internal/services"
	"github.com/ramanuj-ai/ramanuj-site/internal/validation"
)

type ContactHandler struct {
	Contacts *services.ContactService
	Log      *zap.Logger
}

func NewContactHandler(contacts *services.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Log: log}
}

// Create is the public POST /api/contacts endpoint.
func (h *ContactHandler) Create(c *gin.Context) {
	var sub dtos.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if missing := validation.MissingContactFields(sub); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if errs := validation.ValidateContact(sub); len(errs) > 0 {
		// Required fields are present, so this is a malformed value
		// (in practice: the email shape).
		c.JSON(http.StatusBadRequest, gin.H{"error": firstError(errs, "email", "firstName", "lastName", "message")})
		return
	}

	if _, err := h.Contacts.Create(sub); err != nil {
		h.Log.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

// firstError picks the message for the first field in order that has
// one, so responses stay deterministic when several fields fail.
func firstError(errs map[string]string, order ...string) string {
	for _, field := range order {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return "Invalid request"
}
