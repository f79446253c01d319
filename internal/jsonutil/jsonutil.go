// Package jsonutil provides shared utilities for tolerant JSON parsing:
// safe unmarshaling and type extraction from loosely-shaped documents.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalSafe unmarshals JSON data into v.
// Returns false if the data is empty or cannot be parsed, true on success.
// Useful when malformed input should be treated as absent rather than an error.
func UnmarshalSafe(data []byte, v interface{}) bool {
	if len(data) == 0 {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// GetFloat safely extracts a numeric value from a map[string]interface{}.
// JSON numbers decode as float64; anything else reports ok=false.
func GetFloat(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

// GetFloatOr safely extracts a numeric value from a map[string]interface{}
// with a default value if the key doesn't exist or isn't a number.
func GetFloatOr(m map[string]interface{}, key string, defaultValue float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return defaultValue
}

// GetString safely extracts a string value from a map[string]interface{}.
// Returns the value if it's a string, otherwise returns empty string.
func GetString(m map[string]interface{}, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}
