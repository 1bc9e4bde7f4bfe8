package config

import (
	"My-Supps-Backend/domain"
	"My-Supps-Backend/internal/api/handlers"
	"My-Supps-Backend/internal/api/routes"
	"My-Supps-Backend/internal/middleware"
	"My-Supps-Backend/internal/utils"
	"My-Supps-Backend/pkg/catalog"
	"My-Supps-Backend/pkg/jwt"
	"My-Supps-Backend/pkg/simulation"
	"My-Supps-Backend/pkg/supplement"
	"My-Supps-Backend/pkg/user"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	if utils.GetConfig("JWT_SECRET") == "" {
		return nil, domain.ErrMissingSecret
	}

	// setting up logging
	logPath := utils.GetConfig("LOG_FILE")
	err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	return BuildApp(db, NewCatalogRepository(db), file), nil
}

// NewCatalogRepository picks the catalog once at startup from DATA_SOURCE.
func NewCatalogRepository(db *gorm.DB) catalog.CatalogRepository {
	if utils.GetConfig("DATA_SOURCE") == utils.DataSourceFixture {
		log.Info("serving the catalog from fixtures")
		return catalog.NewFixtureCatalog(catalog.DefaultFixtures())
	}
	return catalog.NewCatalogRepository(db)
}

// BuildApp wires repositories, services and handlers. db holds the user
// data; the catalog may live elsewhere.
func BuildApp(db *gorm.DB, catalogRepository catalog.CatalogRepository, logOutput io.Writer) *fiber.App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") == "development",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Tokyo",
		Output:     logOutput,
	}))

	if rate := utils.GetRateLimit(); rate > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rate,
			Expiration: 1 * time.Second,
		}))
	}

	defaultWeight := utils.GetDefaultWeight()

	// Repository
	profileRepository := user.NewProfileRepository(db)
	userSupplementRepository := supplement.NewUserSupplementRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), utils.GetConfig("JWT_ISSUER"))
	catalogService := catalog.NewCatalogService(catalogRepository)
	profileService := user.NewProfileService(profileRepository, defaultWeight)
	mySuppsService := supplement.NewMySuppsService(userSupplementRepository, catalogRepository)
	simulationService := simulation.NewSimulationService(
		catalogRepository,
		profileService,
		mySuppsService,
		simulation.NewSessionStore(utils.GetSessionIdle()),
		defaultWeight,
	)

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	mySuppsHandler := handlers.NewMySuppsHandler(mySuppsService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	simulationHandler := handlers.NewSimulationHandler(simulationService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		CatalogHandler:    catalogHandler,
		MySuppsHandler:    mySuppsHandler,
		ProfileHandler:    profileHandler,
		SimulationHandler: simulationHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app
}
