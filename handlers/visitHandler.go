package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ClinicDesk/middlewares"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/services"
	"ClinicDesk/utils"
)

type VisitHandler struct {
	service *services.VisitService
}

func NewVisitHandler(service *services.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

// CreateVisit records a new visit for the authenticated operator. Field
// validation happens here, on the caller's side; the registry stores what
// it is handed.
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var input models.VisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := utils.ValidateVisitInput(input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	actor, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Operator not found in context"})
		return
	}

	visitID, err := h.service.AddVisit(input, actor)
	if err != nil {
		middlewares.HttpError(c, "Failed to save visit", http.StatusInternalServerError, err)
		return
	}
	c.JSON(201, gin.H{"visit_id": visitID})
}

// GetLatestVisit returns the most recent visit for a patient.
func (h *VisitHandler) GetLatestVisit(c *gin.Context) {
	patientID := c.Param("patient_id")
	visit, err := h.service.GetLatestVisit(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrVisitNotFound) {
			c.JSON(404, gin.H{"error": "No visits found for this patient"})
			return
		}
		middlewares.HttpError(c, "Failed to look up visits", http.StatusInternalServerError, err)
		return
	}
	c.JSON(200, visit)
}

// DeleteVisits removes every visit for a patient and reports whether
// anything was deleted.
func (h *VisitHandler) DeleteVisits(c *gin.Context) {
	patientID := c.Param("patient_id")

	actor, err := middlewares.ExtractUsernameFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Operator not found in context"})
		return
	}

	deleted, err := h.service.RemoveAllVisits(patientID, actor)
	if err != nil {
		middlewares.HttpError(c, "Failed to delete visits", http.StatusInternalServerError, err)
		return
	}
	c.JSON(200, gin.H{"deleted": deleted})
}

// CountVisits tallies visits on one calendar day. The date is validated
// here because the registry counts by plain string equality.
func (h *VisitHandler) CountVisits(c *gin.Context) {
	dateStr := c.Query("date")
	if err := utils.ValidateDate(dateStr); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"date":  dateStr,
		"count": h.service.CountVisitsOnDate(dateStr),
	}, http.StatusOK)
}

// ListVisits returns every visit on record, for reporting and export.
func (h *VisitHandler) ListVisits(c *gin.Context) {
	middlewares.RespondJSON(c, h.service.ListAllVisits(), http.StatusOK)
}
