package routes

import (
	"log"

	"staffing-backend/internal/api/handlers"
	"staffing-backend/internal/api/middleware"
	"staffing-backend/internal/auth"
	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	workerRepo := repository.NewWorkerRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	entryRepo := repository.NewTimeClockEntryRepository(db)

	// Load the per-location coverage policy; missing file falls back to
	// the configured defaults.
	policy, err := config.LoadCoveragePolicy(cfg.CoveragePolicyPath, cfg)
	if err != nil {
		log.Printf("Warning: failed to load coverage policy: %v", err)
		policy, _ = config.LoadCoveragePolicy("", cfg)
	}

	// Initialize services
	workerService := service.NewWorkerService(workerRepo)
	locationService := service.NewLocationService(locationRepo)
	shiftValidator := service.NewShiftValidator()
	schedulerService := service.NewShiftSchedulerService(shiftRepo, workerRepo, locationRepo, shiftValidator, cfg)
	timeClockService := service.NewTimeClockService(entryRepo, workerRepo, locationRepo, policy)
	coverageService := service.NewCoverageService(shiftRepo, locationRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authHandler := auth.NewAuthHandler(authService, workerRepo, cfg.TokenIssueKey)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	workerHandler := handlers.NewWorkerHandler(workerService)
	locationHandler := handlers.NewLocationHandler(locationService)
	shiftHandler := handlers.NewShiftHandler(schedulerService)
	timeClockHandler := handlers.NewTimeClockHandler(timeClockService)
	coverageHandler := handlers.NewCoverageHandler(coverageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token issuance for kiosk and mobile clients
	router.POST("/api/v1/auth/token", authHandler.IssueToken)

	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		workers := api.Group("/workers")
		{
			workers.POST("", authMiddleware.RequireCapability(models.CapabilityManageWorkers), workerHandler.CreateWorker)
			workers.GET("", workerHandler.ListWorkers)
			workers.GET("/:id", workerHandler.GetWorker)
			workers.PUT("/:id", authMiddleware.RequireCapability(models.CapabilityManageWorkers), workerHandler.UpdateWorker)
			workers.GET("/:id/status", timeClockHandler.GetWorkerStatus)
			workers.GET("/:id/entries", timeClockHandler.GetWorkerEntries)
		}

		locations := api.Group("/locations")
		{
			locations.POST("", authMiddleware.RequireCapability(models.CapabilityManageLocations), locationHandler.CreateLocation)
			locations.GET("", locationHandler.ListLocations)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.PUT("/:id", authMiddleware.RequireCapability(models.CapabilityManageLocations), locationHandler.UpdateLocation)
		}

		shifts := api.Group("/shifts")
		{
			shifts.POST("", authMiddleware.RequireCapability(models.CapabilityManageSchedule), shiftHandler.ScheduleShift)
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id/status", authMiddleware.RequireCapability(models.CapabilityManageSchedule), shiftHandler.UpdateShiftStatus)
		}

		timeclock := api.Group("/timeclock")
		{
			timeclock.POST("/entries", authMiddleware.RequireCapability(models.CapabilityRecordTimeClock), timeClockHandler.RecordEntry)
		}

		api.GET("/coverage", authMiddleware.RequireCapability(models.CapabilityViewReports), coverageHandler.GetCoverage)
	}

	return router
}
