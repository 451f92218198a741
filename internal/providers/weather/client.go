// Package weather is the OpenWeather current-conditions client.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	commonhttp "github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/http"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
)

var (
	ErrCityNotFound      = errors.New("CITY_NOT_FOUND")
	ErrWeatherAPITimeout = errors.New("WEATHER_API_TIMEOUT")
	ErrWeatherAPIFailed  = errors.New("WEATHER_API_FAILED")
)

type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

type Client struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: commonhttp.NewClient(config.Timeout),
		logger: log.With(map[string]interface{}{
			"provider": "openweather",
		}),
	}
}

// Current fetches current conditions for a city in metric units. A 404
// from the API maps to ErrCityNotFound; that is the normal "unknown city"
// signal, not an outage.
func (c *Client) Current(ctx context.Context, city string) (*Observation, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.config.APIKey)
	params.Set("units", "metric")

	reqURL := c.config.BaseURL + "/data/2.5/weather?" + params.Encode()

	start := time.Now()
	resp, err := c.doWithRetry(ctx, reqURL)
	metrics.ProviderRequestDuration.WithLabelValues("openweather").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("openweather", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.ProviderRequestsTotal.WithLabelValues("openweather", "not_found").Inc()
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues("openweather", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrWeatherAPIFailed, resp.StatusCode)
	}

	var apiResponse struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
		} `json:"sys"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("openweather", "error").Inc()
		return nil, fmt.Errorf("%w: decode error: %v", ErrWeatherAPIFailed, err)
	}

	obs := &Observation{
		City:        apiResponse.Name,
		CountryCode: apiResponse.Sys.Country,
		TempCelsius: apiResponse.Main.Temp,
		Latitude:    apiResponse.Coord.Lat,
		Longitude:   apiResponse.Coord.Lon,
	}
	if len(apiResponse.Weather) > 0 {
		obs.Description = apiResponse.Weather[0].Description
	}

	metrics.ProviderRequestsTotal.WithLabelValues("openweather", "ok").Inc()
	c.logger.Debug("weather fetched", map[string]interface{}{
		"city":    obs.City,
		"country": obs.CountryCode,
	})

	return obs, nil
}

func (c *Client) doWithRetry(ctx context.Context, reqURL string) (*http.Response, error) {
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrWeatherAPITimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWeatherAPIFailed, err)
		}

		resp, lastErr = c.client.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrWeatherAPITimeout
		}

		if lastErr == nil {
			// 5xx is worth retrying; anything else the caller interprets.
			if resp.StatusCode < 500 {
				return resp, nil
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrWeatherAPIFailed, lastErr)
}
