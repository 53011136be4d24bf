// Package maputils provides permissive accessors for loosely-typed
// map[string]any data, as produced by unmarshalling unknown JSON.
// Missing keys and values of unexpected types yield zero values, they
// are never an error.
package maputils

import (
	"encoding/json"
	"strconv"
	"time"
)

// StrVal returns the value of the key as string.
// If the key does not exist or has a different type an empty string is
// returned.
func StrVal(m map[string]any, key string) string {
	str, _ := m[key].(string)
	return str
}

// IntVal returns the value of the key as int64.
// JSON numbers unmarshal as float64 or json.Number depending on the
// decoder configuration, both are accepted.
// If the key does not exist or has an incompatible type 0 is returned.
func IntVal(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// BoolVal returns the value of the key as bool.
// If the key does not exist or has a different type false is returned.
func BoolVal(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// MapVal returns the value of the key as map[string]any.
// If the key does not exist or has a different type nil is returned.
func MapVal(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

// TimeVal parses the value of the key as RFC3339 timestamp.
// If the key does not exist, has a different type or can not be parsed
// nil is returned.
func TimeVal(m map[string]any, key string) *time.Time {
	str, ok := m[key].(string)
	if !ok {
		return nil
	}

	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil
	}

	return &t
}

// ScalarStrVal returns the value of the key formatted as string.
// Strings are returned verbatim, numbers are formatted without
// exponent notation. For missing keys and other types an empty string
// is returned.
func ScalarStrVal(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
