package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cafestore/internal/catalog"
	applog "cafestore/internal/log"
	"cafestore/internal/services"
	"cafestore/internal/validate"
)

type SearchHandler struct {
	Catalog  *services.CatalogService
	Cart     *services.CartService
	PageSize int
}

// Search derives the visible products for a free-text term. A term naming a
// category selects that category; anything else matches title or category and
// resets the selection to "All Products".
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	sid := ensureSID(c)

	q, ok := validate.Q(c.Query("q"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": c.Query("q")})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Products": []any{}, "Count": 0,
			"Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	cat, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		cat = ""
	}

	products, err := h.Catalog.Products(c.Context())
	if err != nil {
		applog.Error(c, "catalog.fetch", err, nil)
		products = nil
	}
	res := catalog.Derive(products, cat, q)
	if res.Notice != "" {
		applog.Info(c, "search.empty", map[string]any{"q": q, "category": cat})
	}

	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}

	page := validate.Page(c.Query("page"))
	total := catalog.TotalPages(len(res.Products), h.PageSize)
	if page > total {
		page = total
	}
	return render(c, "search", fiber.Map{
		"Q":          q,
		"Products":   catalog.Page(res.Products, page, h.PageSize),
		"Categories": catalog.Categories(products),
		"Category":   res.Category,
		"Notice":     res.Notice,
		"Count":      len(res.Products),
		"Page":       page,
		"TotalPages": total,
		"Cart":       cv,
		"Total":      cv.Total.StringFixed(2),
	})
}
