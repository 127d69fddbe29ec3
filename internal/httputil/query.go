package httputil

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is a normalized view of a URL query string: a key to ordered-values
// mapping that also remembers the order in which keys first appeared.
type Params struct {
	keys   []string
	values map[string][]string
}

// ParseQuery normalizes a raw query string into Params.
//
// Repeated keys collapse into an ordered value list (first occurrence order
// preserved). Malformed pairs degrade instead of failing: a pair without '='
// becomes a key with an empty value, and values with broken percent escapes
// are kept verbatim. Empty input yields empty Params, never an error.
func ParseQuery(rawQuery string) Params {
	params := Params{values: make(map[string][]string)}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key = unescape(key)
		if key == "" {
			continue
		}

		if _, seen := params.values[key]; !seen {
			params.keys = append(params.keys, key)
		}
		params.values[key] = append(params.values[key], unescape(value))
	}

	return params
}

// unescape decodes percent escapes and '+', falling back to the raw input
// when the escape sequence is malformed.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Keys returns parameter names in first-occurrence order.
func (p Params) Keys() []string {
	return p.keys
}

// Has reports whether the key appeared in the query string.
func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns the first value for key, or "" when absent.
func (p Params) Get(key string) string {
	values := p.values[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values for key in query-string order.
func (p Params) Values(key string) []string {
	return p.values[key]
}

// Int returns the first value for key parsed as an integer,
// or fallback when the key is absent or not numeric.
func (p Params) Int(key string, fallback int) int {
	raw := p.Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// Len returns the number of distinct keys.
func (p Params) Len() int {
	return len(p.keys)
}
