package routes

import (
	"net/http"
	"time"

	doctorRepo "medicore/database/repository/doctor"
	staffRepo "medicore/database/repository/staff"
	"medicore/handlers"
	"medicore/middleware"
	"medicore/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers booking and appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/appointments")
	{
		api.Use(auth)
		api.POST("/book", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.BookAppointmentHandler)
		api.GET("/my", middleware.RequireRoles(models.RoleDoctor), hb.MyAppointmentsHandler)
		api.GET("/by-doctor-grouped", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.AppointmentsGroupedByDoctorHandler)
		api.GET("/doctor/:doctorId", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.AppointmentsByDoctorHandler)
		api.PUT("/:appointmentId/status", hb.UpdateAppointmentStatusHandler)
		api.GET("/:appointmentId", hb.GetAppointmentHandler)
	}
}

// RegisterDoctorRoutes registers doctor account and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/doctors")
	{
		api.POST("/login", hb.DoctorLoginHandler)

		protected := api.Group("")
		protected.Use(auth)
		protected.GET("/fees", hb.DoctorFeesHandler)
		protected.POST("/signup", middleware.RequireRoles(models.RoleAdmin), hb.RegisterDoctorHandler)
		protected.POST("/logout", middleware.RequireRoles(models.RoleDoctor), hb.DoctorLogoutHandler)
		protected.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.GetDoctorsHandler)
		protected.GET("/:doctorId", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.GetDoctorHandler)
		protected.PUT("/:doctorId", middleware.RequireRoles(models.RoleAdmin), hb.UpdateDoctorHandler)
		protected.PUT("/:doctorId/fee", middleware.RequireRoles(models.RoleAdmin), hb.SetDoctorFeeHandler)
	}
}

// RegisterPatientRoutes registers patient record endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/patients")
	{
		api.Use(auth)
		api.POST("/register", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.RegisterPatientHandler)
		api.GET("", hb.GetPatientsHandler)
		api.GET("/phone/:phone", middleware.RequireRoles(models.RoleAdmin, models.RoleReception), hb.GetPatientsByPhoneHandler)
		api.GET("/mine", middleware.RequireRoles(models.RoleDoctor), hb.MyPatientsHandler)
	}
}

// RegisterPaymentRoutes registers consultation-fee payment endpoints.
// Payments are collected at the front desk, so admin and reception only.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/payments")
	{
		api.Use(auth, middleware.RequireRoles(models.RoleAdmin, models.RoleReception))
		api.GET("/:appointmentId", hb.GetPaymentContextHandler)
		api.POST("/create-order", hb.CreatePaymentOrderHandler)
		api.POST("/verify-payment", hb.VerifyPaymentHandler)
	}
}

// RegisterDashboardRoutes registers the front-desk dashboard endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/dashboard")
	{
		api.Use(auth, middleware.RequireRoles(models.RoleAdmin, models.RoleReception))
		api.GET("/summary", hb.DashboardSummaryHandler)
	}
}

// RegisterStaffRoutes registers staff account endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api := r.Group("/api/staff")
	{
		api.POST("/login", hb.StaffLoginHandler)

		protected := api.Group("")
		protected.Use(auth)
		protected.POST("/register", middleware.RequireRoles(models.RoleAdmin), hb.RegisterStaffHandler)
		protected.POST("/logout", hb.StaffLogoutHandler)
		protected.PUT("/:staffId/duty", middleware.RequireRoles(models.RoleAdmin), hb.SetStaffDutyHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Medicore"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, doctors doctorRepo.DoctorRepository, staff staffRepo.StaffRepository) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.JWTAuthMiddleware(doctors, staff)

	RegisterAppointmentRoutes(r, hb, auth)
	RegisterDoctorRoutes(r, hb, auth)
	RegisterPatientRoutes(r, hb, auth)
	RegisterPaymentRoutes(r, hb, auth)
	RegisterDashboardRoutes(r, hb, auth)
	RegisterStaffRoutes(r, hb, auth)
	RegisterHealthRoute(r)
}
