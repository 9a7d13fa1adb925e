package main

import (
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"memberorg/config"
	"memberorg/internal/adapters/auth"
	"memberorg/internal/adapters/email"
	"memberorg/internal/adapters/storage"
	delivery "memberorg/internal/delivery/http"
	"memberorg/internal/delivery/http/controllers"
	"memberorg/internal/delivery/http/middleware"
	"memberorg/internal/repository/postgres"
	"memberorg/internal/services"
)

// @title Member Organization API
// @version 1.0
// @description Public submission forms, admin review, and period rollover for a membership organization.
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
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Repositories
	registrationRepo := postgres.NewRegistrationRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	nominationRepo := postgres.NewNominationRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	archiveRepo := postgres.NewArchiveRepository(db)
	rateLimitRepo := postgres.NewRateLimitRepository(db)
	auditRepo := postgres.NewAuditRepository(db)
	userRepo := postgres.NewUserRepository(db)
	identityService := postgres.NewIdentityRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	resourceRepo := postgres.NewResourceRepository(db)
	boardRepo := postgres.NewBoardMemberRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretKey,
			InsecureSkipVerify: cfg.Email.SESSkipVerify,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "error", err)
		os.Exit(1)
	}

	objectStore, err := storage.NewS3Store(storage.S3Config{
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		AccessKeyID:   cfg.Storage.AccessKeyID,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		logger.Error("object store init failed", "error", err)
		os.Exit(1)
	}

	// Services
	auditLogger := services.NewAuditLogger(auditRepo, logger)
	limiter := services.NewRateLimiter(rateLimitRepo, cfg.RateLimitWindow, cfg.RateLimitMaxAttempts)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	submissionService := services.NewSubmissionService(
		registrationRepo, attendeeRepo, nominationRepo, membershipRepo,
		settingsRepo, limiter, emailService, logger,
	)
	reviewService := services.NewReviewService(
		registrationRepo, attendeeRepo, nominationRepo, membershipRepo,
		archiveRepo, auditLogger,
	)
	rolloverService := services.NewRolloverService(
		registrationRepo, attendeeRepo, nominationRepo,
		settingsRepo, archiveRepo, auditLogger,
	)
	settingsService := services.NewSettingsService(settingsRepo, auditLogger)
	authService := services.NewAuthService(userRepo, hasher, tokenIssuer, cfg.TokenExpiry)
	userAdminService := services.NewUserAdminService(userRepo, identityService, hasher, auditLogger, logger)
	contentService := services.NewContentAdminService(contentRepo, resourceRepo, boardRepo, objectStore, auditLogger)

	// HTTP
	router := delivery.NewRouter(delivery.RouterDeps{
		Logger:        logger,
		Submissions:   controllers.NewSubmissionController(logger, submissionService),
		Auth:          controllers.NewAuthController(logger, authService),
		Review:        controllers.NewReviewController(logger, reviewService),
		Settings:      controllers.NewSettingsController(logger, settingsService, rolloverService),
		Users:         controllers.NewUserController(logger, userAdminService),
		Content:       controllers.NewContentController(logger, contentService),
		TokenVerifier: tokenVerifier,
		UserRepo:      userRepo,
	})

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, router))

	server := http.Server{
		Handler: handler,
		Addr:    ":" + cfg.Port,
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server closed", "error", err)
		os.Exit(1)
	}
	logger.Info("server closed")
}
