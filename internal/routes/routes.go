package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/cache"
	"github.com/glowdesk/salon-scheduler/internal/config"
	"github.com/glowdesk/salon-scheduler/internal/handlers"
	infraRepo "github.com/glowdesk/salon-scheduler/internal/infra/repository"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	ucAppointment "github.com/glowdesk/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Entry) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleCache := cache.New(cfg.RedisURL, log)
	log.WithField("cache_enabled", scheduleCache.Enabled()).Info("schedule cache configured")
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, scheduleCache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	splitAppointmentUC := ucAppointment.NewSplitAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	applyTemplateUC := ucAppointment.NewApplyTemplate(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	employeeHandler := handlers.NewEmployeeHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	templateHandler := handlers.NewTemplateHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		updateAppointmentUC,
		removeAppointmentUC,
		splitAppointmentUC,
		applyTemplateUC,
		listAppointmentsByDateUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees/:id/working-hours", workingHoursHandler.Get)
			secured.PUT("/employees/:id/working-hours", workingHoursHandler.Update)

			secured.GET("/templates", templateHandler.List)
			secured.POST("/templates", templateHandler.Create)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.POST("/appointments/:id/split", appointmentHandler.Split)
			secured.POST("/appointments/:id/apply-template", appointmentHandler.ApplyTemplate)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
