// Package aggregator composes the weather, country and wiki providers into
// the delimiter-formatted destination blob consumed by the chat engine.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/country"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/providers/weather"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/storage/destinations"
)

const (
	cacheKeyPrefix = "dest:"

	// Static advice appended to every destination blob.
	travelTips = "Check visa requirements, local covid/travel rules, and local transport options."
)

type weatherAPI interface {
	Current(ctx context.Context, city string) (*weather.Observation, error)
}

type countryAPI interface {
	ByCode(ctx context.Context, alpha2 string) (*country.Info, error)
}

type wikiAPI interface {
	CityOverview(ctx context.Context, city string) (string, []string, error)
}

type destinationSaver interface {
	Save(ctx context.Context, d *destinations.Destination) error
}

type Aggregator struct {
	weather weatherAPI
	country countryAPI
	wiki    wikiAPI
	cache   *redis.Client
	store   destinationSaver
	ttl     time.Duration
	logger  logger.Logger
}

// New wires the three upstream clients with a Redis blob cache and an
// optional persistence sink. Both cache and store may be nil; the
// aggregator degrades to fetch-every-time with no persistence.
func New(w weatherAPI, c countryAPI, wk wikiAPI, cache *redis.Client, store destinationSaver, ttl time.Duration, log logger.Logger) *Aggregator {
	return &Aggregator{
		weather: w,
		country: c,
		wiki:    wk,
		cache:   cache,
		store:   store,
		ttl:     ttl,
		logger:  log.With(map[string]interface{}{"component": "aggregator"}),
	}
}

// Fetch returns the destination blob for a city, read-through cached.
// Weather is the anchor lookup: if it fails the blob is an apology
// sentence, which is cached like any other result so a misspelled city
// doesn't hammer the upstream.
func (a *Aggregator) Fetch(ctx context.Context, city string) (string, error) {
	key := cacheKeyPrefix + strings.ToLower(strings.TrimSpace(city))

	if a.cache != nil {
		cached, err := a.cache.Get(ctx, key).Result()
		if err == nil {
			metrics.DestinationCacheHits.WithLabelValues("hit").Inc()
			a.logger.Debug("destination cache hit", map[string]interface{}{"key": key})
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			a.logger.Warn("destination cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		metrics.DestinationCacheHits.WithLabelValues("miss").Inc()
	}

	blob := a.build(ctx, city)
	a.writeCache(ctx, key, blob)
	return blob, nil
}

func (a *Aggregator) build(ctx context.Context, city string) string {
	obs, err := a.weather.Current(ctx, city)
	if err != nil {
		a.logger.Warn("weather lookup failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
		return fmt.Sprintf("Sorry, I couldn't find data for '%s'. Make sure the city name is spelled correctly.", city)
	}

	var info *country.Info
	if obs.CountryCode != "" {
		info, err = a.country.ByCode(ctx, obs.CountryCode)
		if err != nil {
			a.logger.Warn("country lookup failed", map[string]interface{}{
				"code":  obs.CountryCode,
				"error": err.Error(),
			})
			info = nil
		}
	}

	summary, attractions, err := a.wiki.CityOverview(ctx, city)
	if err != nil {
		a.logger.Warn("wiki lookup failed", map[string]interface{}{
			"city":  city,
			"error": err.Error(),
		})
	}

	name := obs.City
	if name == "" {
		name = city
	}

	countryName := "N/A"
	currencyLine := "N/A"
	timezone := "N/A"
	if info != nil {
		if info.Name != "" {
			countryName = info.Name
		}
		if info.CurrencyCode != "" {
			currencyLine = fmt.Sprintf("%s (%s)", info.CurrencyCode, info.CurrencyName)
		}
		if tz := info.PrimaryTimezone(); tz != "" {
			timezone = tz
		}
	}

	description := summary
	if description == "" {
		description = "No description available."
	}
	places := "No attraction data available."
	if len(attractions) > 0 {
		places = strings.Join(attractions, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Destination: %s\n", name)
	fmt.Fprintf(&b, "Country: %s\n", countryName)
	fmt.Fprintf(&b, "Coordinates: %s, %s\n", formatFloat(obs.Latitude), formatFloat(obs.Longitude))
	fmt.Fprintf(&b, "Standard Time / Timezone: %s\n", timezone)
	fmt.Fprintf(&b, "Currency: %s\n", currencyLine)
	fmt.Fprintf(&b, "Current Weather: %s°C, %s\n", formatFloat(obs.TempCelsius), obs.Description)
	fmt.Fprintf(&b, "Places to Visit: %s\n", places)
	fmt.Fprintf(&b, "Description (short): %s\n", description)
	fmt.Fprintf(&b, "Travel Tips: %s\n", travelTips)

	a.persist(ctx, obs, info, summary, attractions)

	return b.String()
}

// persist is fire-and-forget: a failed save is logged and never affects
// the reply.
func (a *Aggregator) persist(ctx context.Context, obs *weather.Observation, info *country.Info, summary string, attractions []string) {
	if a.store == nil {
		return
	}

	record := &destinations.Destination{
		CityName:           obs.City,
		Latitude:           obs.Latitude,
		Longitude:          obs.Longitude,
		TemperatureCelsius: obs.TempCelsius,
		WeatherDescription: obs.Description,
		PlacesToVisit:      attractions,
		Summary:            summary,
		TravelTips:         travelTips,
	}
	if info != nil {
		record.CountryName = info.Name
		record.CurrencyCode = info.CurrencyCode
		record.CurrencyName = info.CurrencyName
		record.Timezone = info.PrimaryTimezone()
	}

	if err := a.store.Save(ctx, record); err != nil {
		a.logger.Warn("destination save failed", map[string]interface{}{
			"city":  record.CityName,
			"error": err.Error(),
		})
	}
}

func (a *Aggregator) writeCache(ctx context.Context, key, blob string) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Set(ctx, key, blob, a.ttl).Err(); err != nil {
		a.logger.Warn("destination cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
