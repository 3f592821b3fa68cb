package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/h3nr7M3d/Praxia-sub000/internal/audit"
	"github.com/h3nr7M3d/Praxia-sub000/internal/cache"
	"github.com/h3nr7M3d/Praxia-sub000/internal/config"
	"github.com/h3nr7M3d/Praxia-sub000/internal/handlers"
	infraRepo "github.com/h3nr7M3d/Praxia-sub000/internal/infra/repository"
	"github.com/h3nr7M3d/Praxia-sub000/internal/lock"
	"github.com/h3nr7M3d/Praxia-sub000/internal/middleware"
	ucAgenda "github.com/h3nr7M3d/Praxia-sub000/internal/usecase/agenda"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker lock.Locker,
	availCache *cache.AvailabilityCache,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	listAvailabilityUC := ucAgenda.NewListAvailability(
		agendaRepo,
		availCache,
		cfg.HorizonDays,
	)

	commitBookingUC := ucAgenda.NewCommitBooking(
		agendaRepo,
		locker,
		availCache,
		auditDispatcher,
	)

	cancelBookingUC := ucAgenda.NewCancelBooking(
		agendaRepo,
		availCache,
		auditDispatcher,
	)

	confirmBookingUC := ucAgenda.NewConfirmBooking(
		agendaRepo,
		auditDispatcher,
	)

	attendBookingUC := ucAgenda.NewAttendBooking(
		agendaRepo,
		auditDispatcher,
	)

	noShowUC := ucAgenda.NewMarkNoShow(
		agendaRepo,
		auditDispatcher,
	)

	listBookingsUC := ucAgenda.NewListBookings(agendaRepo)

	createScheduleUC := ucAgenda.NewCreateSchedule(
		agendaRepo,
		availCache,
		auditDispatcher,
	)

	disableScheduleUC := ucAgenda.NewDisableSchedule(
		agendaRepo,
		availCache,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(db, listAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		commitBookingUC,
		cancelBookingUC,
		confirmBookingUC,
		attendBookingUC,
		noShowUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		agendaRepo,
		createScheduleUC,
		disableScheduleUC,
	)

	agendaHandler := handlers.NewAgendaHandler(listBookingsUC)
	referenceHandler := handlers.NewReferenceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", availabilityHandler.List)
			publicAPI.GET("/locations", referenceHandler.ListLocations)
			publicAPI.GET("/specialties", referenceHandler.ListSpecialties)
			publicAPI.GET("/practitioners", referenceHandler.ListPractitioners)
		}

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:code/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:code/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:code/attend", bookingHandler.Attend)
			secured.PATCH("/bookings/:code/no-show", bookingHandler.NoShow)

			// ------------------------------
			// AGENDA DO MÉDICO
			// ------------------------------
			secured.GET("/agenda", agendaHandler.ListByDate)

			// ------------------------------
			// SCHEDULES (administração)
			// ------------------------------
			secured.POST("/schedules", scheduleHandler.Create)
			secured.GET("/schedules", scheduleHandler.List)
			secured.PATCH("/schedules/:id/disable", scheduleHandler.Disable)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
