package weather

// Observation is the subset of the OpenWeather response the chatbot uses.
type Observation struct {
	City        string
	CountryCode string
	TempCelsius float64
	Description string
	Latitude    float64
	Longitude   float64
}
