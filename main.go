package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hospital-records-server/internal/app"
	"hospital-records-server/internal/config"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/repository"
	"hospital-records-server/internal/seed"
	"hospital-records-server/internal/service"
)

func main() {
	// Load environment variables; a missing .env file is fine, real
	// environments set the variables directly.
	_ = godotenv.Load()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	// Initialize database connection and synchronize the schema
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		logger.Fatal("error connecting to database", zap.Error(err))
	}

	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	consultationRepo := repository.NewConsultationRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	records := service.NewRecordService(patientRepo, doctorRepo, appointmentRepo, consultationRepo, logger)

	seeder := seed.New(records, patientRepo, userRepo, roleRepo, logger)
	if err := seeder.Run(context.Background()); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// No routes yet: the port is held for the future REST surface.

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("listening", zap.String("addr", serverAddr))
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
