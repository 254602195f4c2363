// Package nutrition предоставляет клиент OpenFoodFacts: поиск продукта и подбор
// низкокалорийных продуктов.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fitness-bot/internal/domain/entity"
	"fitness-bot/internal/domain/port"
)

const (
	DefaultBaseURL = "https://world.openfoodfacts.org"

	// Верхняя граница калорийности для рекомендаций, ккал/100 г
	LowCalorieLimit = 50.0

	unknownProductName = "Неизвестно"
)

// ErrNotFound возвращается, когда поиск не нашёл ни одного продукта.
var ErrNotFound = errors.New("product not found")

// Client ищет продукты в OpenFoodFacts.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type searchResponse struct {
	Products []product `json:"products"`
}

type product struct {
	ProductName string `json:"product_name"`
	Nutriments  struct {
		EnergyKcal100g kcal `json:"energy-kcal_100g"`
	} `json:"nutriments"`
}

// kcal принимает калорийность и числом, и строкой: OpenFoodFacts отдаёт оба варианта.
type kcal float64

func (k *kcal) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*k = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		// Мусор в поле считаем отсутствием данных
		*k = 0
		return nil
	}
	*k = kcal(v)
	return nil
}

func (p product) food() entity.Food {
	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		name = unknownProductName
	}
	return entity.Food{Name: name, KcalPer100g: float64(p.Nutriments.EnergyKcal100g)}
}

// NewClient создаёт клиент. Пустой baseURL заменяется на DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup возвращает первый найденный продукт.
func (c *Client) Lookup(ctx context.Context, query string) (entity.Food, error) {
	q := url.Values{}
	q.Set("action", "process")
	q.Set("search_terms", query)
	q.Set("json", "true")

	products, err := c.search(ctx, q)
	if err != nil {
		return entity.Food{}, err
	}
	if len(products) == 0 {
		return entity.Food{}, ErrNotFound
	}
	return products[0].food(), nil
}

// LowCalorie возвращает продукты не калорийнее LowCalorieLimit без повторов по названию.
func (c *Client) LowCalorie(ctx context.Context) ([]entity.Food, error) {
	q := url.Values{}
	q.Set("action", "process")
	q.Set("sort_by", "calories")
	q.Set("json", "true")

	products, err := c.search(ctx, q)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var foods []entity.Food
	for _, p := range products {
		f := p.food()
		if f.KcalPer100g > LowCalorieLimit {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		foods = append(foods, f)
	}
	return foods, nil
}

func (c *Client) search(ctx context.Context, q url.Values) ([]product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cgi/search.pl?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts: unexpected status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	return data.Products, nil
}

var (
	_ port.NutritionLookup = (*Client)(nil)
	_ port.FoodRecommender = (*Client)(nil)
)
