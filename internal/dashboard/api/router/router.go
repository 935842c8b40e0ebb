package router

import (
	"youtube_stats_dashboard/internal/api/comm"
	"youtube_stats_dashboard/internal/dashboard/api/handlers"
	"youtube_stats_dashboard/internal/dashboard/api/views"
	"youtube_stats_dashboard/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp fiber app with views, error handler, middlewares and routes
func NewApp(appName string, dashboardHandler *handlers.DashboardHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		Views:        views.NewEngine(),
		ErrorHandler: handlers.ErrorHandler,
		// request strings end up in cached tables and must outlive the request
		Immutable: true,
	})

	app.Use(middlewares.RequestLogger())
	app.Use(recover.New())

	RegisterRoutes(app, dashboardHandler)
	return app
}

// RegisterRoutes dashboard routes
func RegisterRoutes(app *fiber.App, dashboardHandler *handlers.DashboardHandler) {
	app.Get("/health", comm.ConnectCheck)
	app.Post("/debug", comm.DebugLogFlag)

	app.Get("/", dashboardHandler.Index)

	api := app.Group("/api")
	api.Get("/videos", dashboardHandler.Videos)
	api.Get("/videos.csv", dashboardHandler.VideosCSV)
}
