package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "cafestore/internal/log"
	"cafestore/internal/services"
)

type CheckoutHandler struct {
	Cart *services.CartService
}

// Complete empties the cart and shows the confirmation page. No order record
// exists anywhere; this is a cosmetic success state.
func (h *CheckoutHandler) Complete(c *fiber.Ctx) error {
	sid := ensureSID(c)

	cv, err := h.Cart.View(sid)
	if err != nil {
		return err
	}
	if err := h.Cart.Clear(sid); err != nil {
		return err
	}
	applog.Audit(c, "checkout.complete", map[string]any{
		"items": cv.Count,
		"total": cv.Total.StringFixed(2),
	})
	return render(c, "checkout", fiber.Map{
		"Count": cv.Count,
		"Total": cv.Total.StringFixed(2),
	})
}
