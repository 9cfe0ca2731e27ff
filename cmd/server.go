package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/job360/directory/directory/category/categoryapi"
	"github.com/job360/directory/directory/contact/contactapi"
	"github.com/job360/directory/directory/country/countryapi"
	"github.com/job360/directory/directory/job/jobapi"
	"github.com/job360/directory/pkg/config"
	"github.com/job360/directory/pkg/errx"
	"github.com/job360/directory/pkg/logx"
)

func main() {
	// 1. Environment & Config
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		logx.Fatalf("Failed to load config: %v", err)
	}

	logx.SetLevel(logx.ParseLevel(cfg.LogLevel))
	logx.Info("Starting Job360 Directory API...")

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Counter Reconciliation Workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	container.Reconciler.Start(workerCtx)

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Job360 Directory API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 7. Register Routes
	jobapi.RegisterRoutes(app, container.JobHandlers)
	categoryapi.RegisterRoutes(app, container.CategoryHandlers)
	countryapi.RegisterRoutes(app, container.CountryHandlers)
	contactapi.RegisterRoutes(app, container.ContactHandlers)

	// Admin: force a full recount of every denormalized counter
	app.Post("/api/admin/reconcile-counts", func(c *fiber.Ctx) error {
		if err := container.Reconciler.ReconcileAll(c.Context()); err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Counters reconciled from source",
		})
	})

	// 8. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logx.Info("Shutting down server...")
	stopWorkers()

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber's own errors (e.g. route not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"success": false,
			"error":   e.Message,
			"code":    e.Code,
		})
	}

	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Internal Server Error",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
