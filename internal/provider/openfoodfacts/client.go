package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
	"github.com/Lalitdesh1/BurnFit/internal/service"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ service.BarcodeLookup = (*Client)(nil)

// LookupBarcode returns the product name and the calories of one serving.
// Products without a serving size are counted per 100 g.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (model.FoodEstimate, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	url := fmt.Sprintf("%s/api/v2/product/%s.json", base, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.FoodEstimate{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "burnfit/1.0 (+https://github.com/Lalitdesh1/BurnFit)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return model.FoodEstimate{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.FoodEstimate{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return model.FoodEstimate{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.FoodEstimate{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.FoodEstimate{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return model.FoodEstimate{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}

	return model.FoodEstimate{
		FoodName:          productName(parsed.Product),
		EstimatedCalories: int(math.Round(servingCalories(parsed.Product))),
	}, nil
}

func productName(p offProduct) string {
	name := strings.TrimSpace(p.ProductName)
	brand := strings.TrimSpace(strings.Split(p.Brands, ",")[0])
	if brand == "" || strings.Contains(strings.ToLower(name), strings.ToLower(brand)) {
		return name
	}
	return brand + " " + name
}

func servingCalories(p offProduct) float64 {
	if v, ok := parseFloatAny(p.Nutriments["energy-kcal_serving"]); ok {
		return v
	}
	per100, ok := parseFloatAny(p.Nutriments["energy-kcal_100g"])
	if !ok {
		return 0
	}
	amount, unit := parseServing(p)
	if unit == "g" || unit == "ml" {
		return per100 * amount / 100
	}
	return per100
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func parseServing(p offProduct) (float64, string) {
	if p.ServingQuantity > 0 {
		unit := strings.ToLower(strings.TrimSpace(p.ServingQuantityUnit))
		if unit == "" {
			unit = "g"
		}
		return p.ServingQuantity, unit
	}
	if strings.TrimSpace(p.ServingSize) != "" {
		parts := strings.Fields(strings.TrimSpace(p.ServingSize))
		if len(parts) >= 2 {
			if val, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", ""), 64); err == nil && val > 0 {
				return val, strings.ToLower(parts[1])
			}
		}
	}
	return 100, "g"
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingSize         string         `json:"serving_size"`
	ServingQuantity     float64        `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}
