// Package weather предоставляет клиент OpenWeather для получения текущей температуры.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitness-bot/internal/domain/port"
)

const DefaultBaseURL = "https://api.openweathermap.org"

// Client получает текущую погоду из OpenWeather.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type currentWeather struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

// NewClient создаёт клиент. Пустой baseURL заменяется на DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Temperature возвращает температуру в городе в градусах Цельсия.
func (c *Client) Temperature(ctx context.Context, city string) (float64, error) {
	if c.apiKey == "" {
		return 0, errors.New("openweather api key is not configured")
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("openweather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("openweather: unexpected status %d", resp.StatusCode)
	}

	var data currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("decode openweather response: %w", err)
	}
	if data.Main.Temp == nil {
		return 0, errors.New("openweather: no temperature in response")
	}

	return *data.Main.Temp, nil
}

var _ port.WeatherLookup = (*Client)(nil)
