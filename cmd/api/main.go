package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"padelcoach/config"
	_ "padelcoach/docs"
	"padelcoach/internal/adapters/auth"
	"padelcoach/internal/adapters/email"
	"padelcoach/internal/adapters/emaillist"
	delivery "padelcoach/internal/delivery/http"
	"padelcoach/internal/delivery/http/controllers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/repository/postgres"
	"padelcoach/internal/services"
)

// @title Padel Coach API
// @version 1.0
// @description Multi-tenant backend for a padel coaching platform: accounts, invitations, courts, sessions, and training plans.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	resetRepo := postgres.NewPasswordResetRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	trainerRepo := postgres.NewTrainerRepository(db)
	courtRepo := postgres.NewCourtRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	sessionStudentRepo := postgres.NewSessionStudentRepository(db)
	trainingPlanRepo := postgres.NewTrainingPlanRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(0)
	jwtCodec := auth.NewJWTCodec(cfg.JWTSecret)
	inviteSigner := auth.NewLinkSigner(cfg.InviteSecret, "invite")
	resetSigner := auth.NewLinkSigner(cfg.InviteSecret, "reset")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	authService := services.NewAuthService(userRepo, hasher, jwtCodec, cfg.JWTExpiry)
	userService := services.NewUserService(userRepo, hasher)
	invitationService := services.NewInvitationService(
		invitationRepo, userRepo, studentRepo, trainerRepo,
		hasher, inviteSigner, emailService, cfg.AppBaseURL, logger,
	)
	resetService := services.NewPasswordResetService(
		resetRepo, userRepo, hasher, resetSigner, emailService, cfg.AppBaseURL, logger,
	)
	studentService := services.NewStudentService(studentRepo)
	trainerService := services.NewTrainerService(trainerRepo)
	courtService := services.NewCourtService(courtRepo)
	sessionService := services.NewSessionService(sessionRepo, sessionStudentRepo)
	trainingPlanService := services.NewTrainingPlanService(trainingPlanRepo)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:            controllers.NewAuthController(logger, authService, invitationService, resetService),
		Invitations:     controllers.NewInvitationController(logger, invitationService, emaillist.NewCSVParser()),
		Users:           controllers.NewUserController(logger, userService),
		Students:        controllers.NewStudentController(logger, studentService),
		Trainers:        controllers.NewTrainerController(logger, trainerService),
		Courts:          controllers.NewCourtController(logger, courtService),
		Sessions:        controllers.NewSessionController(logger, sessionService),
		SessionStudents: controllers.NewSessionStudentController(logger, sessionService),
		TrainingPlans:   controllers.NewTrainingPlanController(logger, trainingPlanService),
	}, jwtCodec)

	handler := middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
