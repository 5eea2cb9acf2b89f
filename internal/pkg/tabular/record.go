// internal/pkg/tabular/record.go
package tabular

import "strconv"

// Record is a flat object with a remembered field order. Go maps do not
// preserve insertion order, so the column contract ("header row = first
// record's own enumeration order") needs the order kept explicitly.
type Record struct {
	keys   []string
	values map[string]any
}

func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores a value under key, appending the key to the field order if it
// is new. It returns the record for chaining.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.keys
}

func (r *Record) Len() int {
	return len(r.keys)
}

// sameShape reports whether the record carries exactly the header's key set.
// Field order within the record is irrelevant; values are always emitted in
// header order.
func (r *Record) sameShape(header []string) bool {
	if len(r.keys) != len(header) {
		return false
	}
	for _, k := range header {
		if _, ok := r.values[k]; !ok {
			return false
		}
	}
	return true
}

// FormatValue renders a scalar the way it travels on the wire: numbers in
// their shortest decimal form, booleans as true/false, everything else via
// its string form.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// Coerce opportunistically types a wire scalar: parseable-as-number becomes
// float64, literal true/false becomes bool, anything else stays a string.
// The empty string stays a string.
func Coerce(s string) any {
	if s == "" {
		return s
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if s == "true" || s == "false" {
		return s == "true"
	}
	return s
}
