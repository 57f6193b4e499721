package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"sitemail/config"
	"sitemail/handlers/api"
	"sitemail/handlers/web"
	"sitemail/middleware"
	"sitemail/utils"
)

// Helper function to determine if request is an API request
func isAPIRequest(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}
	path := c.Path()
	return len(path) >= 4 && path[:4] == "/api"
}

func main() {
	// Environment variables win over the optional config file. A malformed
	// file still yields a usable config (defaults plus environment).
	cfg, err := config.Load("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config, continuing with defaults and environment: %v", err)
	}

	engine := html.New("./templates", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if appErr, ok := err.(*utils.AppError); ok {
				code = appErr.Code
				utils.Log.Error("Application error: %v", appErr)
			} else if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			if isAPIRequest(c) {
				return c.Status(code).JSON(fiber.Map{
					"success": false,
					"message": err.Error(),
				})
			}

			return c.Status(code).Render("error", fiber.Map{
				"Error": err.Error(),
				"Code":  code,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// The relay is a public utility endpoint callable from any origin; CORS
	// here is deliberately permissive, not a security boundary. Preflight
	// OPTIONS requests get 204 with the CORS headers.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// Rate limiting (100 requests per minute per IP)
	app.Use(middleware.RateLimiter(100, time.Minute))

	// Serve static files
	app.Static("/assets", "./assets", fiber.Static{
		Compress:      true,
		CacheDuration: 24 * time.Hour,
	})

	// Handlers
	composeHandler := web.NewComposeHandler()
	sendHandler := api.NewSendHandler(cfg)

	// Composer pages
	app.Get("/compose", composeHandler.HandleCompose)

	// API routes
	app.Post("/api/preview", composeHandler.HandlePreview)
	app.Post("/api/send-email", sendHandler.HandleSend)

	// The cors middleware only acts on requests carrying an Origin header;
	// a bare OPTIONS must still get 204 with the CORS headers.
	app.Options("/api/send-email", api.HandlePreflight)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 404 handler for undefined routes
	app.Use(func(c *fiber.Ctx) error {
		if isAPIRequest(c) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Not found",
			})
		}
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"Error": "Not found",
			"Code":  404,
		})
	})

	utils.Log.Info("Starting server on port %d...", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		utils.Log.Error("Error starting server: %v", err)
	}
}
