package main

import (
	"fmt"
	"log"

	"fahs/internal/analysis"
	"fahs/internal/config"
	"fahs/internal/email/noop"
	"fahs/internal/email/ses"
	"fahs/internal/handler"
	"fahs/internal/port"
	"fahs/internal/repository/postgres"
	"fahs/internal/router"
	"fahs/internal/service"
	s3storage "fahs/internal/storage/s3"
	"fahs/internal/wizard"
)

// @title Fahs Inspection API
// @version 1.0
// @description Restaurant inspection intake and results service
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	variant, err := wizard.ByName(cfg.Analysis.Variant)
	if err != nil {
		return fmt.Errorf("invalid analysis variant: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := postgres.NewSessionRepo(db)
	photoRepo := postgres.NewPhotoRepo(db)
	inspectionRepo := postgres.NewInspectionRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize the analysis client
	analysisClient := analysis.NewClient(&cfg.Analysis, variant)

	// Initialize services
	tokenSvc := service.NewTokenService(cfg.Session)
	wizardSvc := service.NewWizardService(
		sessionRepo, photoRepo, inspectionRepo,
		s3Client, analysisClient, tokenSvc, &cfg.S3, variant,
	)
	resultSvc := service.NewResultService(sessionRepo, inspectionRepo, emailSender, cfg.Analysis, cfg.Email)

	// Initialize handlers
	sessionH := handler.NewSessionHandler(wizardSvc)
	resultH := handler.NewResultHandler(resultSvc)
	inspectionH := handler.NewInspectionHandler(resultSvc)
	healthH := handler.NewHealthHandler(db, variant)

	// Setup router
	r := router.Setup(tokenSvc, sessionH, resultH, inspectionH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s (variant %s)", cfg.Server.Port, variant.Name)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
