package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ClinicDesk/middlewares"
	"ClinicDesk/services"
	"ClinicDesk/utils"
)

type NoteHandler struct {
	service *services.NoteService
}

func NewNoteHandler(service *services.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// GetNotes returns the notes for a patient on one calendar day.
func (h *NoteHandler) GetNotes(c *gin.Context) {
	patientID := c.Query("patient_id")
	dateStr := c.Query("date")
	if patientID == "" {
		c.JSON(400, gin.H{"error": "patient_id is required"})
		return
	}

	actor, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Operator not found in context"})
		return
	}

	notes, err := h.service.FindNotesByDate(patientID, dateStr, actor)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidDateFormat) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, notes)
}
