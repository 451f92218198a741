package country

// Info is the subset of the REST Countries response the chatbot uses.
type Info struct {
	Name         string
	CurrencyCode string
	CurrencyName string
	Timezones    []string
}

// PrimaryTimezone returns the first listed timezone, or empty.
func (i *Info) PrimaryTimezone() string {
	if len(i.Timezones) == 0 {
		return ""
	}
	return i.Timezones[0]
}
