package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"wine-diary/internal/api/handlers"
	"wine-diary/internal/api/routes"
	"wine-diary/internal/middleware"
	"wine-diary/internal/utils"
	"wine-diary/internal/utils/mailing"
	"wine-diary/internal/utils/storage"
	"wine-diary/pkg/jwt"
	"wine-diary/pkg/tasting"
	"wine-diary/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// NewApp wires repositories, services and handlers onto a Fiber app. The
// returned closer releases the request log file.
func NewApp(db *gorm.DB, s3 storage.AwsS3) (*fiber.App, func() error, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:               "Wine Diary API",
		DisableStartupMessage: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file: %w", err)
	}

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX", 20),
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	tastingRepository := tasting.NewTastingRepository(db)

	// Service
	jwtService := jwt.NewJWTService(
		utils.GetConfig("JWT_SECRET"),
		utils.GetConfig("JWT_ISSUER"),
		time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute,
	)
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	userService := user.NewUserService(userRepository, jwtService, mailer)
	tastingService := tasting.NewTastingService(tastingRepository, s3, validator)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tastingHandler := handlers.NewTastingHandler(tastingService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		TastingHandler: tastingHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, file.Close, nil
}
