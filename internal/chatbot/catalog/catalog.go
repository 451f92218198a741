// Package catalog defines the fixed set of destination fields the chatbot
// understands and the keyword aliases that map user phrasing to them.
// Static data only; nothing here mutates after init.
package catalog

// Canonical field names. These double as the delimiters embedded in the
// aggregated blob, so they must match the provider output byte for byte.
const (
	FieldDestination = "Destination"
	FieldCountry     = "Country"
	FieldCoordinates = "Coordinates"
	FieldTimezone    = "Standard Time / Timezone"
	FieldCurrency    = "Currency"
	FieldWeather     = "Current Weather"
	FieldPlaces      = "Places to Visit"
	FieldDescription = "Description (short)"
	FieldTravelTips  = "Travel Tips"
)

// fieldOrder is the blob order of canonical names. The parser builds its
// splitting pattern from this list.
var fieldOrder = []string{
	FieldDestination,
	FieldCountry,
	FieldCoordinates,
	FieldTimezone,
	FieldCurrency,
	FieldWeather,
	FieldPlaces,
	FieldDescription,
	FieldTravelTips,
}

// Alias maps a lowercase keyword to a canonical field name.
type Alias struct {
	Keyword string
	Field   string
}

// aliasOrder is scanned first-match-wins; the order is a deliberate
// priority, not incidental.
var aliasOrder = []Alias{
	{"country", FieldCountry},
	{"coordinate", FieldCoordinates},
	{"location", FieldCoordinates},
	{"time", FieldTimezone},
	{"timezone", FieldTimezone},
	{"currency", FieldCurrency},
	{"weather", FieldWeather},
	{"place", FieldPlaces},
	{"attraction", FieldPlaces},
	{"description", FieldDescription},
	{"tip", FieldTravelTips},
}

// longForm fields get a separated block in the full rendering instead of a
// compact single line.
var longForm = map[string]bool{
	FieldDescription: true,
	FieldPlaces:      true,
	FieldTravelTips:  true,
}

// Fields returns the canonical field names in blob order.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Aliases returns the keyword aliases in priority order.
func Aliases() []Alias {
	out := make([]Alias, len(aliasOrder))
	copy(out, aliasOrder)
	return out
}

// IsLongForm reports whether a field gets block rendering.
func IsLongForm(field string) bool {
	return longForm[field]
}

// IsListField reports whether a field holds a comma-separated list that the
// content filter applies to.
func IsListField(field string) bool {
	return field == FieldPlaces
}
