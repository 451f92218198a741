// Package wiki is the MediaWiki client used for the encyclopedic summary
// and the attraction-candidate searches.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	commonhttp "github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/http"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
)

var (
	ErrWikiAPITimeout = errors.New("WIKI_API_TIMEOUT")
	ErrWikiAPIFailed  = errors.New("WIKI_API_FAILED")
	ErrPageNotFound   = errors.New("WIKI_PAGE_NOT_FOUND")
)

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	MaxAttractions int
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
			"provider": "wikipedia",
		}),
	}
}

// Search returns up to limit page titles matching the query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", fmt.Sprintf("%d", limit))
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var apiResponse struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrWikiAPIFailed, err)
	}

	titles := make([]string, 0, len(apiResponse.Query.Search))
	for _, hit := range apiResponse.Query.Search {
		titles = append(titles, hit.Title)
	}
	return titles, nil
}

// Summary returns the plain-text intro extract of a page, capped at
// sentences.
func (c *Client) Summary(ctx context.Context, title string, sentences int) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsentences", fmt.Sprintf("%d", sentences))
	params.Set("titles", title)
	params.Set("format", "json")

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	var apiResponse struct {
		Query struct {
			Pages map[string]struct {
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("%w: decode error: %v", ErrWikiAPIFailed, err)
	}

	for _, page := range apiResponse.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPageNotFound, title)
}

// CityOverview returns the city's summary and up to MaxAttractions
// attraction-candidate titles, deduped and excluding the city page itself.
// Either part may come back empty without error; the aggregator degrades
// the fields.
func (c *Client) CityOverview(ctx context.Context, city string) (string, []string, error) {
	searchResults, err := c.Search(ctx, city, 5)
	if err != nil {
		return "", nil, err
	}
	if len(searchResults) == 0 {
		return "", nil, nil
	}

	pageTitle := searchResults[0]
	summary, err := c.Summary(ctx, pageTitle, 3)
	if err != nil && !errors.Is(err, ErrPageNotFound) {
		return "", nil, err
	}

	queries := []string{
		fmt.Sprintf("%s attractions", city),
		fmt.Sprintf("Things to do in %s", city),
		fmt.Sprintf("Tourist attractions in %s", city),
	}

	seen := make(map[string]bool)
	attractions := make([]string, 0, c.config.MaxAttractions)
	for _, q := range queries {
		titles, err := c.Search(ctx, q, c.config.MaxAttractions)
		if err != nil {
			// Partial results beat none; attraction searches are best effort.
			c.logger.Warn("attraction search failed", map[string]interface{}{
				"query": q,
				"error": err.Error(),
			})
			continue
		}
		for _, t := range titles {
			if t == pageTitle || seen[t] {
				continue
			}
			seen[t] = true
			attractions = append(attractions, t)
		}
		if len(attractions) >= c.config.MaxAttractions {
			break
		}
	}
	if len(attractions) > c.config.MaxAttractions {
		attractions = attractions[:c.config.MaxAttractions]
	}

	return summary, attractions, nil
}

func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	reqURL := c.config.BaseURL + "/w/api.php?" + params.Encode()

	start := time.Now()
	resp, err := c.doWithRetry(ctx, reqURL)
	metrics.ProviderRequestDuration.WithLabelValues("wikipedia").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("wikipedia", "error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderRequestsTotal.WithLabelValues("wikipedia", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrWikiAPIFailed, resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("wikipedia", "error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrWikiAPIFailed, err)
	}

	metrics.ProviderRequestsTotal.WithLabelValues("wikipedia", "ok").Inc()
	return buf, nil
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
				return nil, ErrWikiAPITimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWikiAPIFailed, err)
		}

		resp, lastErr = c.client.Do(req)

		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrWikiAPITimeout
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

	return nil, fmt.Errorf("%w: %v", ErrWikiAPIFailed, lastErr)
}
