package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/config"
	"github.com/salonworks/salon-scheduler/internal/handlers"
	infraRepo "github.com/salonworks/salon-scheduler/internal/infra/repository"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/notify"
	"github.com/salonworks/salon-scheduler/internal/schedule"
	"github.com/salonworks/salon-scheduler/internal/settings"
	ucBooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	settingsStore := settings.NewStore(db, rdb)

	engine := schedule.NewEngine(
		bookingRepo,
		settingsStore,
		schedule.WindowPolicyPermissive,
	)

	var publisher notify.Publisher
	if cfg.KafkaBrokers != "" {
		publisher = notify.NewKafkaPublisher(cfg.KafkaBrokers, "")
	} else {
		publisher = notify.LogPublisher{Logger: logger}
	}
	dispatcher := notify.NewDispatcher(publisher, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		engine,
		dispatcher,
		cfg.BusinessTimezone,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		dispatcher,
		time.Duration(cfg.CancelCutoffMin)*time.Minute,
		cfg.BusinessTimezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, engine)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		availabilityUC,
		bookingRepo,
		cfg.BusinessTimezone,
	)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	settingsHandler := handlers.NewSettingsHandler(settingsStore)
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg.BusinessTimezone)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.ListActive)
		api.GET("/availability", bookingHandler.Availability)
		api.POST("/bookings", bookingHandler.Create)
		api.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		api.POST("/bookings/:id/feedback", feedbackHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.GET("/services/:id/price-history", serviceHandler.PriceHistory)

			admin.GET("/staff", staffHandler.List)
			admin.POST("/staff", staffHandler.Create)
			admin.GET("/staff/:id/windows", staffHandler.GetWindows)
			admin.PUT("/staff/:id/windows", staffHandler.ReplaceWindows)

			admin.GET("/bookings", bookingHandler.ListByDate)

			admin.GET("/settings/business-hours", settingsHandler.GetBusinessHours)
			admin.PUT("/settings/business-hours", settingsHandler.UpdateBusinessHours)
		}
	}
}
