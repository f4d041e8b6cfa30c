package main

import (
	"fmt"
	"log"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/config"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/email/noop"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/email/ses"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/handler"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/port"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/repository/postgres"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/router"
	"github.com/shreemathi-1/dsrfinal-sub001/internal/service"
	s3storage "github.com/shreemathi-1/dsrfinal-sub001/internal/storage/s3"
)

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

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	reportRowRepo := postgres.NewReportRowRepo(db)
	complaintRepo := postgres.NewComplaintRepo(db)
	evidenceRepo := postgres.NewEvidenceRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	passwordResetSvc := service.NewPasswordResetService(userRepo, emailSender, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	reportSvc := service.NewReportService(reportRowRepo)
	complaintSvc := service.NewComplaintService(complaintRepo)
	evidenceSvc := service.NewEvidenceService(complaintRepo, evidenceRepo, s3Client, &cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, passwordResetSvc)
	userH := handler.NewUserHandler(userSvc)
	reportH := handler.NewReportHandler(reportSvc, userSvc)
	complaintH := handler.NewComplaintHandler(complaintSvc, evidenceSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, userH, reportH, complaintH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
