package api

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func SetupRouter(app *fiber.App, handler *PricingHandler, corsOrigins []string) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${locals:requestid} ${latency} ${method} ${path}\n",
	}))

	// fiber refuses credentials together with a wildcard origin
	origins := strings.Join(corsOrigins, ",")
	wildcard := origins == "" || slices.Contains(corsOrigins, "*")
	if wildcard {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: !wildcard,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "*",
	}))

	app.Get("/", handler.HandleRoot)
	app.Get("/health", handler.HandleHealth)
	app.Get("/docs", handler.HandleDocs)

	// API Versioning
	v1 := app.Group("/api/v1")
	// Endpoints
	v1.Post("/predict", handler.HandlePredict)
	v1.Get("/options", handler.HandleOptions)
	v1.Get("/models/:marka", handler.HandleModelsByBrand)
	v1.Get("/series/:model", handler.HandleSeriesByModel)
	v1.Get("/metrics", handler.HandleMetrics)
}
