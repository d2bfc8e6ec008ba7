package controllers

import (
	"github.com/gin-gonic/gin"

	"ClinicDesk/handlers"
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
)

// SetupVisitRoutes registers the visit, note and stats routes. The role
// gates mirror the front end's role-to-menu mapping: nurses and clinicians
// work the records, admins tally visit counts, management pulls the
// trend reports.
func SetupVisitRoutes(
	router *gin.Engine,
	visitHandler *handlers.VisitHandler,
	noteHandler *handlers.NoteHandler,
	statsHandler *handlers.StatsHandler,
) {
	clinicalGroup := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleNurse, models.RoleClinician),
	)
	{
		clinicalGroup.POST("/visits", visitHandler.CreateVisit)
		clinicalGroup.GET("/visits/latest/:patient_id", visitHandler.GetLatestVisit)
		clinicalGroup.DELETE("/visits/:patient_id", visitHandler.DeleteVisits)
		clinicalGroup.GET("/notes", noteHandler.GetNotes)
	}

	countGroup := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin, models.RoleNurse, models.RoleClinician),
	)
	{
		countGroup.GET("/visits/count", visitHandler.CountVisits)
	}

	reportingGroup := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleManagement),
	)
	{
		reportingGroup.GET("/visits", visitHandler.ListVisits)
		reportingGroup.GET("/stats/visit-trends", statsHandler.VisitTrends)
	}
}
