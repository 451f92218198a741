package country

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		MaxRetries: 1,
	}
}

func TestByCode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/alpha/IN", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"name": {"common": "India"},
			"currencies": {"INR": {"name": "Indian rupee", "symbol": "₹"}},
			"timezones": ["UTC+05:30"]
		}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	info, err := client.ByCode(context.Background(), "IN")

	assert.NoError(t, err)
	assert.Equal(t, "India", info.Name)
	assert.Equal(t, "INR", info.CurrencyCode)
	assert.Equal(t, "Indian rupee", info.CurrencyName)
	assert.Equal(t, "UTC+05:30", info.PrimaryTimezone())
}

func TestByCode_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	_, err := client.ByCode(context.Background(), "XX")

	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestByCode_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	_, err := client.ByCode(context.Background(), "XX")

	assert.ErrorIs(t, err, ErrCountryNotFound)
}

func TestByCode_NoCurrenciesOrTimezones(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": {"common": "Antarctica"}}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	info, err := client.ByCode(context.Background(), "AQ")

	assert.NoError(t, err)
	assert.Equal(t, "Antarctica", info.Name)
	assert.Equal(t, "", info.CurrencyCode)
	assert.Equal(t, "", info.PrimaryTimezone())
}

func TestByCode_MultiCurrencyDeterministic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"name": {"common": "Zimbabwe"},
			"currencies": {
				"ZWL": {"name": "Zimbabwean dollar"},
				"USD": {"name": "United States dollar"}
			},
			"timezones": ["UTC+02:00"]
		}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	info, err := client.ByCode(context.Background(), "ZW")

	assert.NoError(t, err)
	assert.Equal(t, "USD", info.CurrencyCode)
	assert.Equal(t, "United States dollar", info.CurrencyName)
}
