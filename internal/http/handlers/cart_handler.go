package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cafestore/internal/catalog"
	applog "cafestore/internal/log"
	"cafestore/internal/services"
	"cafestore/internal/validate"
)

type CartHandler struct {
	Cart     *services.CartService
	PageSize int
}

// View renders the cart list, paginated like the product grid.
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}

	page := validate.Page(c.Query("page"))
	total := catalog.TotalPages(len(cv.Entries), h.PageSize)
	if page > total {
		page = total
	}
	return render(c, "cart", fiber.Map{
		"Entries":    catalog.Page(cv.Entries, page, h.PageSize),
		"Count":      cv.Count,
		"Total":      cv.Total.StringFixed(2),
		"Page":       page,
		"TotalPages": total,
	})
}

// UpdateQuantity sets an entry's quantity. Decrementing below 1 is refused and
// the cart re-renders unchanged; removal is its own action.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty, ok := validate.QtySet(c.FormValue("qty"))
	if !ok {
		return c.Status(400).SendString("invalid qty")
	}

	if err := h.Cart.SetQuantity(sid, id, qty); err != nil {
		if errors.Is(err, services.ErrQuantityFloor) {
			return c.Redirect("/cart")
		}
		return err
	}
	return c.Redirect("/cart")
}

// Remove deletes an entry; an id that is not in the cart is a no-op.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Cart.Remove(sid, id); err != nil {
		return err
	}
	applog.Info(c, "cart.remove", map[string]any{"product": id})
	return c.Redirect("/cart")
}
