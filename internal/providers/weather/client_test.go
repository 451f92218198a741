package weather

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
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 1,
	}
}

func TestCurrent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Delhi",
			"sys": {"country": "IN"},
			"main": {"temp": 31.5},
			"weather": [{"description": "haze"}],
			"coord": {"lat": 28.67, "lon": 77.22}
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	obs, err := client.Current(context.Background(), "Delhi")

	assert.NoError(t, err)
	assert.Equal(t, "Delhi", obs.City)
	assert.Equal(t, "IN", obs.CountryCode)
	assert.Equal(t, 31.5, obs.TempCelsius)
	assert.Equal(t, "haze", obs.Description)
	assert.Equal(t, 28.67, obs.Latitude)
	assert.Equal(t, 77.22, obs.Longitude)
}

func TestCurrent_CityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	_, err := client.Current(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestCurrent_RetriesOn5xx(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"name":"Delhi","sys":{"country":"IN"},"main":{"temp":30},"weather":[],"coord":{}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), logger.NewNoOpLogger())
	obs, err := client.Current(context.Background(), "Delhi")

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "", obs.Description)
}

func TestCurrent_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	client := NewClient(cfg, logger.NewNoOpLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Current(ctx, "Delhi")
	assert.ErrorIs(t, err, ErrWeatherAPITimeout)
}
