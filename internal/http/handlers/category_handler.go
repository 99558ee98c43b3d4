package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"cafestore/internal/catalog"
	applog "cafestore/internal/log"
	"cafestore/internal/services"
	"cafestore/internal/validate"
)

type CategoryHandler struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	PageSize int
}

// Home renders the landing page: full catalog grid with pagination, the
// category sidebar, and the cart panel.
func (h *CategoryHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)
	page := validate.Page(c.Query("page"))

	products, err := h.Catalog.Products(c.Context())
	if err != nil {
		// Fetch failure is absorbed: log it and render an empty grid.
		applog.Error(c, "catalog.fetch", err, nil)
		products = nil
	}

	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}

	total := catalog.TotalPages(len(products), h.PageSize)
	if page > total {
		page = total
	}
	return render(c, "landing", fiber.Map{
		"Products":   catalog.Page(products, page, h.PageSize),
		"Categories": catalog.Categories(products),
		"Category":   "",
		"Page":       page,
		"TotalPages": total,
		"Cart":       cv,
		"Total":      cv.Total.StringFixed(2),
	})
}

// List renders the category-filtered grid for /category/:category.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	raw, err := url.QueryUnescape(c.Params("category"))
	if err != nil {
		raw = c.Params("category")
	}
	cat, ok := validate.Category(raw)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Category not found"})
	}

	products, err := h.Catalog.Products(c.Context())
	if err != nil {
		applog.Error(c, "catalog.fetch", err, nil)
		products = nil
	}
	res := catalog.Derive(products, cat, "")
	if res.Category == "" {
		res.Category = cat
	}

	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}

	return render(c, "category", fiber.Map{
		"Products":   res.Products,
		"Categories": catalog.Categories(products),
		"Category":   res.Category,
		"Notice":     res.Notice,
		"Cart":       cv,
		"Total":      cv.Total.StringFixed(2),
	})
}
