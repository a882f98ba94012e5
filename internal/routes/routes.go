package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/audit"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/config"
	"github.com/RITWIKRUDRA01/calendar-booking-system/internal/handlers"
	infraRepo "github.com/RITWIKRUDRA01/calendar-booking-system/internal/infra/repository"
	ucSchedule "github.com/RITWIKRUDRA01/calendar-booking-system/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, log *zap.Logger, store *infraRepo.MemoryStore) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log, cfg.AuditQueueSize)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	availabilityUC := ucSchedule.NewGetAvailability(store, cfg.HorizonDays)

	bookSlotUC := ucSchedule.NewBookSlot(store, auditDispatcher, cfg.HorizonDays)

	listUpcomingUC := ucSchedule.NewListUpcoming(store)

	summaryUC := ucSchedule.NewSummary(store, cfg.HorizonDays)

	getWorkDetailsUC := ucSchedule.NewGetWorkDetails(store)

	updateWorkDetailsUC := ucSchedule.NewUpdateWorkDetails(store, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	ownerHandler := handlers.NewOwnerHandler(
		store,
		auditDispatcher,
		getWorkDetailsUC,
		updateWorkDetailsUC,
	)

	inviteeHandler := handlers.NewInviteeHandler(
		store,
		availabilityUC,
		bookSlotUC,
		cfg.HorizonDays,
	)

	calendarHandler := handlers.NewCalendarHandler(
		summaryUC,
		listUpcomingUC,
		cfg.HorizonDays,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		owners := api.Group("/owners")
		{
			owners.POST("", ownerHandler.Create)
			owners.GET("", ownerHandler.List)
			owners.GET("/settings/work-details/:id", ownerHandler.GetWorkDetails)
			owners.POST("/settings/work-details", ownerHandler.UpdateWorkDetails)
		}

		invitees := api.Group("/invitees")
		{
			invitees.POST("", inviteeHandler.Create)
			invitees.GET("/:id", inviteeHandler.Get)
			invitees.POST("/available-slots", inviteeHandler.AvailableSlots)
			invitees.POST("/book-appointment", inviteeHandler.BookAppointment)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("/:id/appointments", calendarHandler.ListUpcoming)
			calendar.GET("/:id/appointments/summary", calendarHandler.Summary)
			calendar.GET("/:id/appointments/today", calendarHandler.Today)
		}

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
