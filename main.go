package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medicore/config"
	"medicore/database"
	appointmentRepoPkg "medicore/database/repository/appointment"
	billingRepoPkg "medicore/database/repository/billing"
	doctorRepoPkg "medicore/database/repository/doctor"
	patientRepoPkg "medicore/database/repository/patient"
	staffRepoPkg "medicore/database/repository/staff"
	"medicore/handlers"
	"medicore/middleware"
	"medicore/routes"
	"medicore/services/appointment"
	"medicore/services/dashboard"
	"medicore/services/doctor"
	"medicore/services/patient"
	"medicore/services/payment"
	"medicore/services/staff"
	"medicore/services/storage"
	"medicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// indexEnsurer is implemented by repositories that maintain their own indexes.
type indexEnsurer interface {
	EnsureIndexes() error
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := storage.NewCloudinaryStorage()
	if err != nil {
		// Profile images are optional; the rest of the system works without them.
		logger.Warn("cloudinary storage unavailable, profile image uploads disabled", zap.Error(err))
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	billingRepo := billingRepoPkg.NewMongoBillingRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	for _, repo := range []interface{}{doctorRepo, appointmentRepo} {
		if e, ok := repo.(indexEnsurer); ok {
			if err := e.EnsureIndexes(); err != nil {
				logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
			}
		}
	}

	// services.
	appointmentService := &appointment.DefaultAppointmentService{
		Appointments: appointmentRepo,
		Doctors:      doctorRepo,
		Patients:     patientRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:    doctorRepo,
		Storage: storageService,
	}
	patientService := &patient.DefaultPatientService{
		Repo:         patientRepo,
		Appointments: appointmentRepo,
	}
	paymentService := payment.NewDefaultPaymentService(appointmentRepo, doctorRepo, billingRepo)
	dashboardService := &dashboard.DefaultDashboardService{
		Patients:     patientRepo,
		Doctors:      doctorRepo,
		Staff:        staffRepo,
		Appointments: appointmentRepo,
		Billings:     billingRepo,
	}
	staffService := &staff.DefaultStaffService{
		Repo: staffRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		appointmentService,
		doctorService,
		patientService,
		paymentService,
		dashboardService,
		staffService,
	)
	routes.RegisterRoutes(router, handlerBundle, doctorRepo, staffRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
