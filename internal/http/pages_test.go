package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func fetch(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestLanding_ShowsCatalogAndCategories(t *testing.T) {
	app := newTestApp(t)
	code, body := fetch(t, app, "/")
	if code != http.StatusOK {
		t.Fatalf("landing: %d", code)
	}
	for _, want := range []string{"House Coffee", "Bagel", "Green Tea", "drinks", "snacks", "All Products"} {
		if !strings.Contains(body, want) {
			t.Fatalf("landing missing %q:\n%s", want, body)
		}
	}
}

func TestCategoryPage_FiltersGrid(t *testing.T) {
	app := newTestApp(t)
	code, body := fetch(t, app, "/category/drinks")
	if code != http.StatusOK {
		t.Fatalf("category: %d", code)
	}
	if !strings.Contains(body, "House Coffee") || !strings.Contains(body, "Green Tea") {
		t.Fatalf("category grid missing drinks:\n%s", body)
	}
	if strings.Contains(body, "Bagel") {
		t.Fatalf("category grid leaked other categories:\n%s", body)
	}
}

func TestSearch_CategoryTermSelectsCategory(t *testing.T) {
	app := newTestApp(t)
	code, body := fetch(t, app, "/search?q=drinks")
	if code != http.StatusOK {
		t.Fatalf("search: %d", code)
	}
	if !strings.Contains(body, "House Coffee") || strings.Contains(body, "Bagel") {
		t.Fatalf("category search wrong result:\n%s", body)
	}
	if !strings.Contains(body, "<h4>drinks</h4>") {
		t.Fatalf("category heading not selected:\n%s", body)
	}
}

func TestSearch_NoMatchShowsNotice(t *testing.T) {
	app := newTestApp(t)
	code, body := fetch(t, app, "/search?q=zzz")
	if code != http.StatusOK {
		t.Fatalf("search: %d", code)
	}
	if !strings.Contains(body, "No products found for this search!") {
		t.Fatalf("missing no-results notice:\n%s", body)
	}
	if !strings.Contains(body, "All Products") {
		t.Fatalf("category state not reset:\n%s", body)
	}
}

func TestSearch_InvalidTermRejected(t *testing.T) {
	app := newTestApp(t)
	code, _ := fetch(t, app, "/search?q=%3Cscript%3E")
	if code != http.StatusBadRequest {
		t.Fatalf("want 400 for invalid term, got %d", code)
	}
}

func TestAPICategories_JSON(t *testing.T) {
	app := newTestApp(t)
	code, body := fetch(t, app, "/api/v1/categories")
	if code != http.StatusOK {
		t.Fatalf("categories: %d", code)
	}
	if !strings.Contains(body, `"drinks"`) || !strings.Contains(body, `"snacks"`) {
		t.Fatalf("bad categories payload: %s", body)
	}
}

func TestLanding_CatalogDownRendersEmpty(t *testing.T) {
	// Nothing listening: every fetch fails, pages still render.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	app := newTestAppWithSource(t, dead.URL)

	code, body := fetch(t, app, "/")
	if code != http.StatusOK {
		t.Fatalf("landing with dead catalog: %d", code)
	}
	if !strings.Contains(body, "No products to show.") {
		t.Fatalf("expected empty grid:\n%s", body)
	}

	code, _ = fetch(t, app, "/api/v1/categories")
	if code != http.StatusBadGateway {
		t.Fatalf("want 502 from categories API, got %d", code)
	}
}

func TestUnknownProduct_NotFound(t *testing.T) {
	app := newTestApp(t)
	if code, _ := fetch(t, app, "/product/999"); code != http.StatusNotFound {
		t.Fatalf("want 404 for unknown product, got %d", code)
	}
	if code, _ := fetch(t, app, "/product/abc"); code != http.StatusNotFound {
		t.Fatalf("want 404 for bad id, got %d", code)
	}
}
