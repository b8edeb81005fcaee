package app

import (
	"database/sql"
	"errors"
	"fmt"

	"lawfirm_backend/database"
	"lawfirm_backend/internal/auth"
	"lawfirm_backend/internal/config"
	"lawfirm_backend/internal/email"
	"lawfirm_backend/internal/handlers"
	"lawfirm_backend/internal/logger"
	"lawfirm_backend/internal/middleware"
	"lawfirm_backend/internal/models"
	"lawfirm_backend/internal/repositories"
	"lawfirm_backend/internal/routes"
	"lawfirm_backend/internal/services"
	"lawfirm_backend/internal/storage"
	"lawfirm_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "base_path", cfg.Storage.BasePath)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailSender email.Sender
	if cfg.Email.SMTPHost != "" {
		sender, err := email.NewSMTPSender(email.Config{
			SMTPHost:  cfg.Email.SMTPHost,
			SMTPPort:  cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    true,
		})
		if err != nil {
			logger.Fatal("Failed to initialize email sender", "error", err)
		}
		emailSender = sender
	} else {
		logger.Warn("SMTP is not configured, emails are collected in memory")
		emailSender = email.NewMockSender()
	}

	userRepo := repositories.NewUserRepository(gormDB)
	appointmentRepo := repositories.NewAppointmentRepository(gormDB)
	contactRepo := repositories.NewContactMessageRepository(gormDB)
	caseRepo := repositories.NewCaseRepository(gormDB)
	caseUpdateRepo := repositories.NewCaseUpdateRepository(gormDB)
	documentRepo := repositories.NewDocumentRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, emailSender),
		UserService:        services.NewUserService(userRepo),
		AppointmentService: services.NewAppointmentService(appointmentRepo, userRepo, emailSender),
		ContactService:     services.NewContactService(contactRepo, emailSender),
		CaseService:        services.NewCaseService(caseRepo, userRepo),
		CaseUpdateService:  services.NewCaseUpdateService(caseUpdateRepo, caseRepo),
		DocumentService:    services.NewDocumentService(documentRepo, caseRepo, storageInstance),
		EmailSender:        emailSender,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		AppointmentHandler: handlers.NewAppointmentHandler(baseHandler, serviceContainer.AppointmentService),
		ContactHandler:     handlers.NewContactHandler(baseHandler, serviceContainer.ContactService),
		CaseHandler:        handlers.NewCaseHandler(baseHandler, serviceContainer.CaseService, serviceContainer.CaseUpdateService),
		DocumentHandler:    handlers.NewDocumentHandler(baseHandler, serviceContainer.DocumentService),
		FileHandler:        handlers.NewFileHandler(baseHandler, storageInstance),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin заводит первого админа из окружения.
// Остальные пользователи создаются уже через API.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Username:     "admin",
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
