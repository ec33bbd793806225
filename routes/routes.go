package routes

import (
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/config"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/controllers"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/middlewares"
	"github.com/Hyowon-A/kpsa-hackathon-2025-team04/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// shared services
	supplementSvc := services.NewSupplementService(services.NewSupplementCatalog(config.DB), nil)
	surveySvc := services.NewSurveyService(services.NewSurveyStore(config.DB), supplementSvc, services.NewOpenAIClient())
	historySvc := services.NewHistoryService(config.DB)
	bookingSvc := services.NewBookingService(config.DB)

	hub := services.NewRealtimeHub()
	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Warnf("push service disabled: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, pushSvc)

	surveyCtl := controllers.NewSurveyController(surveySvc, historySvc)
	bookingCtl := controllers.NewBookingController(bookingSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
		user.GET("/alerts", controllers.ListAlerts)
	}

	// Survey intake and report
	survey := r.Group("/survey")
	survey.Use(middlewares.AuthMiddleware())
	{
		survey.POST("/result", surveyCtl.SubmitSurvey)
		survey.GET("/history", surveyCtl.GetHistory)
		survey.GET("/summary", surveyCtl.GetSummary)

		if checkupSvc, err := services.NewCheckupService(); err == nil {
			checkupCtl := controllers.NewCheckupController(checkupSvc)
			survey.POST("/checkup-image", checkupCtl.UploadCheckupImage)
		} else {
			log.Warnf("checkup text extraction disabled: %v", err)
		}
	}

	// Supplement catalog
	supplements := r.Group("/supplements")
	supplements.Use(middlewares.AuthMiddleware())
	{
		supplements.GET("/search", controllers.SearchSupplements)
		supplements.GET("/ingredients", controllers.ListIngredients)
	}

	// Pharmacy bookings
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/pharmacies", bookingCtl.ListPharmacies)
		protected.POST("/bookings", bookingCtl.CreateBooking)
		protected.GET("/bookings", bookingCtl.ListBookings)
		protected.GET("/ws/alerts", realtimeCtl.AlertsWS)
	}

	devCtl := controllers.NewDevController(pushSvc)
	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	dev.POST("/seed-catalog", devCtl.SeedCatalog)
	dev.POST("/push-test", devCtl.PushTest)

	if pushSvc != nil {
		deviceCtl := controllers.NewDeviceController(pushSvc)
		devices := r.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		devices.POST("", deviceCtl.Register)
	}

	return r
}
