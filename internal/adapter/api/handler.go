package api

import (
	"errors"
	"fmt"
	"net/url"

	"carprice-api/internal/domain/entity"
	"carprice-api/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const apiName = "CarPrice AI API"

type PricingHandler struct {
	service  *usecase.PricingService
	version  string
	validate *validator.Validate
}

func NewPricingHandler(service *usecase.PricingService, version string) *PricingHandler {
	return &PricingHandler{
		service:  service,
		version:  version,
		validate: newValidator(),
	}
}

func (h *PricingHandler) HandleHealth(c *fiber.Ctx) error {
	loaded := h.service.IsModelLoaded()
	status := "healthy"
	if !loaded {
		status = "degraded"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":       status,
		"model_loaded": loaded,
		"version":      h.version,
	})
}

func (h *PricingHandler) HandleRoot(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"name":        apiName,
		"version":     h.version,
		"description": "Vehicle price prediction API",
		"docs":        "/docs",
		"health":      "/health",
	})
}

// HandleDocs lists the registered endpoints.
func (h *PricingHandler) HandleDocs(c *fiber.Ctx) error {
	routes := make([]fiber.Map, 0)
	for _, r := range c.App().GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		routes = append(routes, fiber.Map{"method": r.Method, "path": r.Path})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"name": apiName, "version": h.version, "routes": routes})
}

func (h *PricingHandler) HandlePredict(c *fiber.Ctx) error {
	// Without a model no input can be served, valid or not.
	if !h.service.IsModelLoaded() {
		return respondError(c, entity.ErrModelNotLoaded)
	}

	req, err := decodePredictRequest(c.Body())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid input", "invalid request body: "+err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, fmt.Errorf("%w: %s", entity.ErrInvalidInput, validationDetail(err)))
	}

	result, err := h.service.Predict(c.UserContext(), req.toRecord())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PricingHandler) HandleOptions(c *fiber.Ctx) error {
	options, err := h.service.Options()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(options)
}

func (h *PricingHandler) HandleModelsByBrand(c *fiber.Ctx) error {
	brand := pathParam(c, "marka")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"marka":    brand,
		"modeller": h.service.ModelsForBrand(brand),
	})
}

func (h *PricingHandler) HandleSeriesByModel(c *fiber.Ctx) error {
	model := pathParam(c, "model")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"model":   model,
		"seriler": h.service.SeriesForModel(model),
	})
}

func (h *PricingHandler) HandleMetrics(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Telemetry().Snapshot())
}

// pathParam returns the unescaped route parameter, so "3%20Serisi" reads as "3 Serisi".
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// respondError maps domain errors to HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrModelNotLoaded):
		return errorJSON(c, fiber.StatusInternalServerError, "service not ready",
			"model not loaded, restart the server once the model file is available")
	case errors.Is(err, entity.ErrOptionsUnavailable):
		return errorJSON(c, fiber.StatusInternalServerError, "service not ready",
			"options not available, the dataset could not be loaded")
	case errors.Is(err, entity.ErrInvalidInput):
		return errorJSON(c, fiber.StatusUnprocessableEntity, "invalid input", err.Error())
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "prediction failed", err.Error())
	}
}

func errorJSON(c *fiber.Ctx, status int, label, detail string) error {
	return c.Status(status).JSON(fiber.Map{"error": label, "detail": detail})
}
