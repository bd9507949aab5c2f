package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/v2/product/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
}

func TestLookupBarcodeUsesServingCalories(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, http.StatusOK, `{
  "status": 1,
  "product": {
    "product_name": "Yogurt Cup",
    "brands": "Brand Co, Other",
    "serving_quantity": 170,
    "serving_quantity_unit": "g",
    "nutriments": {
      "energy-kcal_serving": 120.4,
      "energy-kcal_100g": 71
    }
  }
}`)
	item, err := c.LookupBarcode(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if item.FoodName != "Brand Co Yogurt Cup" || item.EstimatedCalories != 120 {
		t.Fatalf("unexpected parsed item: %+v", item)
	}
}

func TestLookupBarcodeScalesPer100g(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, http.StatusOK, `{
  "status": 1,
  "product": {
    "product_name": "Oat Bar",
    "serving_size": "40 g",
    "nutriments": {"energy-kcal_100g": "400"}
  }
}`)
	item, err := c.LookupBarcode(context.Background(), "87654321")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if item.FoodName != "Oat Bar" || item.EstimatedCalories != 160 {
		t.Fatalf("unexpected parsed item: %+v", item)
	}
}

func TestLookupBarcodeNotFound(t *testing.T) {
	t.Parallel()

	c := newTestServer(t, http.StatusOK, `{"status": 0, "product": {}}`)
	if _, err := c.LookupBarcode(context.Background(), "00000000"); err == nil {
		t.Fatalf("expected not found error")
	}
	c = newTestServer(t, http.StatusInternalServerError, `oops`)
	if _, err := c.LookupBarcode(context.Background(), "00000000"); err == nil {
		t.Fatalf("expected status error")
	}
}
