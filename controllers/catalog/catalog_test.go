package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGetCatalogs(t *testing.T) {
	app := fiber.New()
	app.Get("/api/catalogs", NewCatalogController().GetCatalogs)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/catalogs", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		Data Catalogs `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(body.Data.PackingCategories) == 0 || len(body.Data.BudgetCategories) == 0 || len(body.Data.EventIcons) == 0 {
		t.Error("category catalogs should not be empty")
	}
	if len(body.Data.ReservationTypes) == 0 || len(body.Data.ReservationStatuses) == 0 {
		t.Fatal("reservation option sets should not be empty")
	}

	found := false
	for _, s := range body.Data.ReservationStatuses {
		if s == "notBooked" {
			found = true
		}
	}
	if !found {
		t.Error("reservation statuses should include the default notBooked")
	}
}
