package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"buildtrack/interfaces/api/handlers"
	"buildtrack/interfaces/api/middleware"
	"buildtrack/interfaces/api/routes"
	"buildtrack/pkg/di"
	"buildtrack/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// Logger may not exist yet at this point.
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		// Body limit sits just above the upload cap so oversized files are
		// rejected with the handler's 400, not a connection-level 413.
		BodyLimit: int(cfg.Upload.MaxBytes) + 1024*1024,
	})

	// Middleware order matters: request IDs must exist before logging.
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS.AllowOrigins))

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
