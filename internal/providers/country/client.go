// Package country is the REST Countries metadata client. No API key
// required.
package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	commonhttp "github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/http"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
)

var (
	ErrCountryNotFound   = errors.New("COUNTRY_NOT_FOUND")
	ErrCountryAPITimeout = errors.New("COUNTRY_API_TIMEOUT")
	ErrCountryAPIFailed  = errors.New("COUNTRY_API_FAILED")
)

type Config struct {
	BaseURL    string
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
			"provider": "restcountries",
		}),
	}
}

// ByCode looks up country metadata by ISO alpha-2 code.
func (c *Client) ByCode(ctx context.Context, alpha2 string) (*Info, error) {
	reqURL := fmt.Sprintf("%s/v3.1/alpha/%s", c.config.BaseURL, alpha2)

	start := time.Now()
	resp, err := c.doWithRetry(ctx, reqURL)
	metrics.ProviderRequestDuration.WithLabelValues("restcountries").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "not_found").Inc()
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, alpha2)
	}
	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrCountryAPIFailed, resp.StatusCode)
	}

	// The alpha endpoint wraps a single country in an array.
	var apiResponse []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
		Currencies map[string]struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"currencies"`
		Timezones []string `json:"timezones"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "error").Inc()
		return nil, fmt.Errorf("%w: decode error: %v", ErrCountryAPIFailed, err)
	}
	if len(apiResponse) == 0 {
		metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "not_found").Inc()
		return nil, fmt.Errorf("%w: empty response for %s", ErrCountryNotFound, alpha2)
	}

	data := apiResponse[0]
	info := &Info{
		Name:      data.Name.Common,
		Timezones: data.Timezones,
	}
	// JSON object order is lost in a Go map; sort so multi-currency
	// countries resolve deterministically.
	if len(data.Currencies) > 0 {
		codes := make([]string, 0, len(data.Currencies))
		for code := range data.Currencies {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		info.CurrencyCode = codes[0]
		info.CurrencyName = data.Currencies[codes[0]].Name
	}

	metrics.ProviderRequestsTotal.WithLabelValues("restcountries", "ok").Inc()
	c.logger.Debug("country fetched", map[string]interface{}{
		"code": alpha2,
		"name": info.Name,
	})

	return info, nil
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
				return nil, ErrCountryAPITimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCountryAPIFailed, err)
		}

		resp, lastErr = c.client.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrCountryAPITimeout
		}

		if lastErr == nil {
			if resp.StatusCode < 500 {
				return resp, nil
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrCountryAPIFailed, lastErr)
}
