package aggregator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/country"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/weather"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/storage/destinations"
)

type fakeWeather struct {
	obs   *weather.Observation
	err   error
	calls int
}

func (f *fakeWeather) Current(ctx context.Context, city string) (*weather.Observation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.obs, nil
}

type fakeCountry struct {
	info *country.Info
	err  error
}

func (f *fakeCountry) ByCode(ctx context.Context, alpha2 string) (*country.Info, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

type fakeWiki struct {
	summary     string
	attractions []string
	err         error
}

func (f *fakeWiki) CityOverview(ctx context.Context, city string) (string, []string, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.summary, f.attractions, nil
}

type fakeStore struct {
	saved []*destinations.Destination
	err   error
}

func (f *fakeStore) Save(ctx context.Context, d *destinations.Destination) error {
	f.saved = append(f.saved, d)
	return f.err
}

func delhiWeather() *fakeWeather {
	return &fakeWeather{obs: &weather.Observation{
		City:        "Delhi",
		CountryCode: "IN",
		TempCelsius: 31.5,
		Description: "haze",
		Latitude:    28.67,
		Longitude:   77.22,
	}}
}

func indiaCountry() *fakeCountry {
	return &fakeCountry{info: &country.Info{
		Name:         "India",
		CurrencyCode: "INR",
		CurrencyName: "Indian rupee",
		Timezones:    []string{"UTC+05:30"},
	}}
}

func delhiWiki() *fakeWiki {
	return &fakeWiki{
		summary:     "Delhi is the capital territory of India.",
		attractions: []string{"Red Fort", "Qutub Minar"},
	}
}

const delhiBlob = "Destination: Delhi\n" +
	"Country: India\n" +
	"Coordinates: 28.67, 77.22\n" +
	"Standard Time / Timezone: UTC+05:30\n" +
	"Currency: INR (Indian rupee)\n" +
	"Current Weather: 31.5°C, haze\n" +
	"Places to Visit: Red Fort, Qutub Minar\n" +
	"Description (short): Delhi is the capital territory of India.\n" +
	"Travel Tips: Check visa requirements, local covid/travel rules, and local transport options.\n"

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestFetch_BuildsBlobAndCaches(t *testing.T) {
	mr, cache := newTestCache(t)
	store := &fakeStore{}
	agg := New(delhiWeather(), indiaCountry(), delhiWiki(), cache, store, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), "Delhi")

	require.NoError(t, err)
	assert.Equal(t, delhiBlob, blob)

	cached, err := mr.Get("dest:delhi")
	require.NoError(t, err)
	assert.Equal(t, delhiBlob, cached)
	assert.Equal(t, time.Hour, mr.TTL("dest:delhi"))

	require.Len(t, store.saved, 1)
	assert.Equal(t, "Delhi", store.saved[0].CityName)
	assert.Equal(t, "INR", store.saved[0].CurrencyCode)
	assert.Equal(t, []string{"Red Fort", "Qutub Minar"}, store.saved[0].PlacesToVisit)
}

func TestFetch_CacheHitSkipsProviders(t *testing.T) {
	mr, cache := newTestCache(t)
	mr.Set("dest:delhi", delhiBlob)

	w := delhiWeather()
	agg := New(w, indiaCountry(), delhiWiki(), cache, nil, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), " Delhi ")

	require.NoError(t, err)
	assert.Equal(t, delhiBlob, blob)
	assert.Equal(t, 0, w.calls)
}

func TestFetch_WeatherFailureReturnsApology(t *testing.T) {
	mr, cache := newTestCache(t)
	w := &fakeWeather{err: weather.ErrCityNotFound}
	store := &fakeStore{}
	agg := New(w, indiaCountry(), delhiWiki(), cache, store, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find data for 'Atlantis'. Make sure the city name is spelled correctly.", blob)
	assert.Empty(t, store.saved)

	// The apology is cached like any other blob.
	cached, err := mr.Get("dest:atlantis")
	require.NoError(t, err)
	assert.Equal(t, blob, cached)
}

func TestFetch_CountryAndWikiDegrade(t *testing.T) {
	_, cache := newTestCache(t)
	c := &fakeCountry{err: country.ErrCountryAPIFailed}
	wk := &fakeWiki{err: errors.New("wiki down")}
	agg := New(delhiWeather(), c, wk, cache, nil, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), "Delhi")

	require.NoError(t, err)
	assert.Contains(t, blob, "Country: N/A\n")
	assert.Contains(t, blob, "Standard Time / Timezone: N/A\n")
	assert.Contains(t, blob, "Currency: N/A\n")
	assert.Contains(t, blob, "Places to Visit: No attraction data available.\n")
	assert.Contains(t, blob, "Description (short): No description available.\n")
	assert.Contains(t, blob, "Current Weather: 31.5°C, haze\n")
}

func TestFetch_SaveFailureDoesNotAffectReply(t *testing.T) {
	_, cache := newTestCache(t)
	store := &fakeStore{err: errors.New("insert failed")}
	agg := New(delhiWeather(), indiaCountry(), delhiWiki(), cache, store, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), "Delhi")

	require.NoError(t, err)
	assert.Equal(t, delhiBlob, blob)
}

func TestFetch_NoCacheConfigured(t *testing.T) {
	w := delhiWeather()
	agg := New(w, indiaCountry(), delhiWiki(), nil, nil, time.Hour, logger.NewNoOpLogger())

	_, err := agg.Fetch(context.Background(), "Delhi")
	require.NoError(t, err)
	_, err = agg.Fetch(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, 2, w.calls)
}

func TestFetch_RedisCommandFlow(t *testing.T) {
	cache, mock := redismock.NewClientMock()
	mock.ExpectGet("dest:delhi").RedisNil()
	mock.ExpectSet("dest:delhi", delhiBlob, time.Hour).SetVal("OK")

	agg := New(delhiWeather(), indiaCountry(), delhiWiki(), cache, nil, time.Hour, logger.NewNoOpLogger())

	blob, err := agg.Fetch(context.Background(), "Delhi")

	require.NoError(t, err)
	assert.Equal(t, delhiBlob, blob)
	assert.NoError(t, mock.ExpectationsWereMet())
}
