package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

// Infra carries the process-wide singletons built in main.
type Infra struct {
	Locker  lock.Locker
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	Log     *slog.Logger

	// Now is the salon clock; its date is "today" for every rule.
	Now func() time.Time
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(infra.Log, infra.Metrics),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	scheduleRepo := appointmentRepo.ScheduleGormRepository

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.Hours,
		infra.Now,
		infra.Metrics,
	)
	listStylistsUC := ucAppointment.NewListStylistsForService(appointmentRepo)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		cfg.Hours,
		infra.Now,
		infra.Locker,
		infra.Audit,
		infra.Metrics,
		infra.Log,
	)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		cfg.Hours,
		infra.Now,
		infra.Locker,
		infra.Audit,
		infra.Metrics,
		infra.Log,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, infra.Now, infra.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, infra.Now, infra.Audit)
	listMineUC := ucAppointment.NewListClientAppointments(appointmentRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	manageTemplatesUC := ucSchedule.NewManageTemplates(scheduleRepo, cfg.Hours, infra.Audit)
	manageOverridesUC := ucSchedule.NewManageOverrides(scheduleRepo, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret)
	meHandler := handlers.NewMeHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, listStylistsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listMineUC,
		listByDateUC,
	)
	scheduleHandler := handlers.NewScheduleHandler(manageTemplatesUC, manageOverridesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(db))

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if infra.Metrics != nil {
		r.GET("/metrics", gin.WrapH(infra.Metrics.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	api := r.Group("/api")
	api.Use(limiter.Limit())
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKING FORM LOOKUPS
			// ------------------------------
			secured.GET("/peluqueros", availabilityHandler.Peluqueros)
			secured.GET("/horas-disponibles", availabilityHandler.Horas)

			// ------------------------------
			// CLIENT APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.PUT("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		}

		staff := api.Group("/staff")
		staff.Use(
			middleware.AuthMiddleware(cfg.JWTSecret),
			middleware.RequireRole(models.RoleStaff),
		)
		{
			staff.GET("/appointments", appointmentHandler.ListByDate)
			staff.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			staff.GET("/stylists/:id/schedules", scheduleHandler.ListTemplates)
			staff.POST("/stylists/:id/schedules", scheduleHandler.CreateTemplate)
			staff.PUT("/schedules/:id", scheduleHandler.UpdateTemplate)
			staff.DELETE("/schedules/:id", scheduleHandler.DeleteTemplate)

			staff.GET("/stylists/:id/shifts", scheduleHandler.ListOverrides)
			staff.POST("/stylists/:id/shifts", scheduleHandler.CreateOverride)
			staff.PUT("/shifts/:id", scheduleHandler.UpdateOverride)
			staff.DELETE("/shifts/:id", scheduleHandler.DeleteOverride)

			staff.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
