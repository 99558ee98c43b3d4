package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "cafestore/internal/log"
	"cafestore/internal/services"
	"cafestore/internal/validate"
)

type ProductHandler struct {
	Catalog   *services.CatalogService
	Selection *services.SelectionService
}

// Detail opens (or resumes) the product's selection and renders the detail
// page. The quantity is pre-filled from the cart when the product is already
// in it.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	p, found, err := h.Catalog.Find(c.Context(), id)
	if err != nil {
		applog.Error(c, "catalog.fetch", err, nil)
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	sel, open := h.Selection.Current(sid)
	if !open || sel.Product.ID != p.ID {
		if sel, err = h.Selection.Open(sid, p); err != nil {
			return err
		}
	}
	return render(c, "product", fiber.Map{"P": sel.Product, "Quantity": sel.Quantity})
}

// Quantity applies op=inc|dec to the open selection, floor 1 on decrement.
func (h *ProductHandler) Quantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if _, ok := validate.ProductID(c.Params("id")); !ok {
		return c.Status(400).SendString("invalid product")
	}

	var err error
	switch c.FormValue("op") {
	case "inc":
		err = h.Selection.Increment(sid)
	case "dec":
		err = h.Selection.Decrement(sid)
	default:
		return c.Status(400).SendString("invalid op")
	}
	if errors.Is(err, services.ErrNoSelection) {
		return c.Redirect("/product/" + c.Params("id"))
	}
	if err != nil {
		return err
	}
	return c.Redirect("/product/" + c.Params("id"))
}

// Confirm commits the selection quantity to the cart.
func (h *ProductHandler) Confirm(c *fiber.Ctx) error {
	sid := ensureSID(c)
	err := h.Selection.Confirm(sid)
	if errors.Is(err, services.ErrNoSelection) {
		return c.Redirect("/")
	}
	if err != nil {
		return err
	}
	applog.Info(c, "cart.add", map[string]any{"product": c.Params("id")})
	return c.Redirect("/cart")
}

// Cancel closes the selection without touching the cart.
func (h *ProductHandler) Cancel(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Selection.Cancel(sid)
	return c.Redirect("/")
}
