package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ClinicDesk/middlewares"
	"ClinicDesk/services"
)

type StatsHandler struct {
	service *services.StatsService
}

func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// VisitTrends returns the per-day visit counts for the trailing window and
// refreshes the derived stats file as a side effect.
func (h *StatsHandler) VisitTrends(c *gin.Context) {
	days := services.DefaultTrendDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	trends, err := h.service.VisitTrends(days)
	if err != nil {
		middlewares.HttpError(c, "Failed to compute visit trends", http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"days":   days,
		"trends": trends,
	}, http.StatusOK)
}
