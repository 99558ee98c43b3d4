package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "cafestore/internal/log"
	"cafestore/internal/services"
)

type APIHandler struct {
	Catalog *services.CatalogService
}

// Categories proxies the product source's category list as JSON.
func (h *APIHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories(c.Context())
	if err != nil {
		applog.Error(c, "catalog.categories", err, nil)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "catalog unavailable"})
	}
	if cats == nil {
		cats = []string{}
	}
	return c.JSON(cats)
}
