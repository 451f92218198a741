package destinations

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// destinationSchema guards the insert path: a record that fails it never
// reaches the database.
const destinationSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "city_name", "created_at"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"city_name": {"type": "string", "minLength": 1},
		"country_name": {"type": "string"},
		"latitude": {"type": "number", "minimum": -90, "maximum": 90},
		"longitude": {"type": "number", "minimum": -180, "maximum": 180},
		"timezone": {"type": "string"},
		"currency_code": {"type": "string", "maxLength": 3},
		"currency_name": {"type": "string"},
		"temperature_celsius": {"type": "number"},
		"weather_description": {"type": "string"},
		"places_to_visit": {
			"type": ["array", "null"],
			"items": {"type": "string"}
		},
		"summary": {"type": "string"},
		"travel_tips": {"type": "string"},
		"created_at": {"type": "string", "format": "date-time"}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(destinationSchema)

func validateDestination(d *Destination) error {
	doc, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal destination: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return fmt.Errorf("destination record invalid: %s", strings.Join(issues, "; "))
	}
	return nil
}
