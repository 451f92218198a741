// Package record holds the parsed destination record and the blob parser
// that produces it.
package record

// Record is an ordered field->value mapping. Keys are canonical catalog
// names and iteration follows blob order, not catalog order.
type Record struct {
	keys   []string
	values map[string]string
}

// New creates an empty Record.
func New() *Record {
	return &Record{
		values: make(map[string]string),
	}
}

// Set assigns a value, appending the key on first sight and keeping its
// original position on overwrite.
func (r *Record) Set(key, value string) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether it is present.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.keys)
}

// IsEmpty reports whether the record holds no entries.
func (r *Record) IsEmpty() bool {
	return len(r.keys) == 0
}
