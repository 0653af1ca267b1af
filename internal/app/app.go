package app

import (
	"errors"
	"fmt"

	"nexivo_backend/internal/auth"
	"nexivo_backend/internal/config"
	"nexivo_backend/internal/email"
	"nexivo_backend/internal/handlers"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/middleware"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/routes"
	"nexivo_backend/internal/services"
	"nexivo_backend/internal/storage"
	"nexivo_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate keeps the schema in sync with the model structs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Enrollment{},
		&models.Blog{},
		&models.Vacancy{},
		&models.VacancyApplication{},
		&models.JoinRequest{},
		&models.Subscriber{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	uploads := buildStorageGateway(cfg)

	provider := buildEmailProvider(cfg)

	container := services.NewServiceContainer(provider, uploads, services.ContainerConfig{
		AdminEmail: cfg.Email.AdminEmail,
		SiteURL:    cfg.SiteURL,
	})

	appHandlers := handlers.NewAppHandlers(container, validator.New())

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// buildStorageGateway assembles the provider chain: the S3-compatible
// bucket first when configured, the local disk as the fallback tier.
func buildStorageGateway(cfg *config.Config) *storage.Gateway {
	var providers []storage.Provider

	if cfg.Storage.Bucket != "" && cfg.Storage.AccessKey != "" {
		s3Provider, err := storage.NewS3Provider(storage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Endpoint:  cfg.Storage.Endpoint,
		})
		if err != nil {
			logger.Fatal("Failed to initialize object storage", "error", err)
		}
		providers = append(providers, s3Provider)
		logger.Info("Object storage initialized", "bucket", cfg.Storage.Bucket)
	} else {
		logger.Warn("Object storage not configured, uploads go to local disk only")
	}

	local, err := storage.NewLocalProvider(cfg.Storage.FallbackPath)
	if err != nil {
		logger.Fatal("Failed to initialize local storage", "error", err)
	}
	providers = append(providers, local)

	return storage.NewGateway(providers...)
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	renderer := email.NewTemplateManager()
	if err := services.RegisterDefaultTemplates(renderer); err != nil {
		logger.Fatal("Failed to register email templates", "error", err)
	}
	if cfg.Email.TemplatesDir != "" {
		if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
			logger.Warn("Failed to load email templates from disk, using built-ins", "dir", cfg.Email.TemplatesDir, "error", err)
		}
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, renderer)
	if err != nil {
		logger.Fatal("Failed to initialize email provider", "error", err)
	}
	return provider
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the bootstrap admin account from the
// environment. Without it nobody could ever reach the admin routes.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.User
	result := db.Where("email = ? AND role = ?", adminEmail, models.UserRoleAdmin).First(&admin)
	if result.Error == nil {
		if auth.CheckPasswordHash(adminPassword, admin.PasswordHash) {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		// The env password changed; the stored hash follows it.
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin.PasswordHash = hash
		if err := db.Save(&admin).Error; err != nil {
			return fmt.Errorf("failed to update admin password: %w", err)
		}
		logger.Info("Updated admin password from environment", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusCompleted,
		IsVerified:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
