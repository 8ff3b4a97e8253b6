package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is the structured payload parsed from a participant's reply
type Fields map[string]any

// String returns the named field as a string
func (f Fields) String(key string) (string, error) {
	v, ok := f[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}

// Int returns the named field as an int. Agents return numbers
// inconsistently, so JSON numbers and numeric strings are both accepted.
func (f Fields) Int(key string) (int, error) {
	v, ok := f[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("field %q is not numeric", key)
	}
}
