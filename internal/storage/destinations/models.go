package destinations

import "time"

// Destination is one persisted aggregation result.
type Destination struct {
	ID                 string    `json:"id"`
	CityName           string    `json:"city_name"`
	CountryName        string    `json:"country_name"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Timezone           string    `json:"timezone"`
	CurrencyCode       string    `json:"currency_code"`
	CurrencyName       string    `json:"currency_name"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	WeatherDescription string    `json:"weather_description"`
	PlacesToVisit      []string  `json:"places_to_visit"`
	Summary            string    `json:"summary"`
	TravelTips         string    `json:"travel_tips"`
	CreatedAt          time.Time `json:"created_at"`
}
