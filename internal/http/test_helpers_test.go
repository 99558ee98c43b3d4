package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"cafestore/internal/config"
	"cafestore/internal/http/handlers"
	"cafestore/internal/repos"
)

const testProducts = `[
  {"id":1,"category":"drinks","title":"House Coffee","description":"Fresh brew","image":"/static/coffee.png","price":3.50},
  {"id":2,"category":"snacks","title":"Bagel","description":"With cream cheese","image":"/static/bagel.png","price":2.25},
  {"id":3,"category":"drinks","title":"Green Tea","description":"Loose leaf","image":"/static/tea.png","price":3.00}
]`

// newTestApp wires the real handlers against an in-memory cart DB and a fake
// product source.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(testProducts))
		case "/products/categories":
			w.Write([]byte(`["drinks","snacks"]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(source.Close)

	return newTestAppWithSource(t, source.URL)
}

func newTestAppWithSource(t *testing.T, catalogURL string) *fiber.App {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", CatalogURL: catalogURL, PageSize: 10}

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })

	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(db, cfg)
	app.Get("/", deps.CategoryHandler.Home)
	app.Get("/search", deps.SearchHandler.Search)
	app.Get("/category/:category", deps.CategoryHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Post("/product/:id/quantity", deps.ProductHandler.Quantity)
	app.Post("/product/:id/confirm", deps.ProductHandler.Confirm)
	app.Post("/product/:id/cancel", deps.ProductHandler.Cancel)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/checkout", deps.CheckoutHandler.Complete)
	api := app.Group("/api/v1")
	api.Get("/categories", deps.APIHandler.Categories)

	return app
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
