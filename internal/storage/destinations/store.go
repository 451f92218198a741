// Package destinations persists aggregated destination records to Postgres.
package destinations

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	commonerrors "github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/errors"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/logger"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
)

const insertQuery = `
	INSERT INTO destinations (
		id, city_name, country_name, latitude, longitude, timezone,
		currency_code, currency_name, temperature_celsius,
		weather_description, places_to_visit, summary, travel_tips,
		created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.With(map[string]interface{}{"component": "destination-store"}),
	}
}

// Save validates and inserts one destination record. Missing ID and
// CreatedAt are filled in here so callers only supply domain fields.
func (s *Store) Save(ctx context.Context, d *Destination) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	if err := validateDestination(d); err != nil {
		metrics.DestinationSavesTotal.WithLabelValues("invalid").Inc()
		return err
	}

	_, err := s.db.ExecContext(ctx, insertQuery,
		d.ID,
		d.CityName,
		d.CountryName,
		d.Latitude,
		d.Longitude,
		d.Timezone,
		d.CurrencyCode,
		d.CurrencyName,
		d.TemperatureCelsius,
		d.WeatherDescription,
		pq.Array(d.PlacesToVisit),
		d.Summary,
		d.TravelTips,
		d.CreatedAt,
	)
	if err != nil {
		metrics.DestinationSavesTotal.WithLabelValues("error").Inc()
		return commonerrors.NewDatabaseInsertFailedError(err)
	}

	metrics.DestinationSavesTotal.WithLabelValues("ok").Inc()
	s.logger.Info("destination saved", map[string]interface{}{
		"id":   d.ID,
		"city": d.CityName,
	})
	return nil
}
