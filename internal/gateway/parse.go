package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError indicates a participant reply that could not be parsed into
// structured fields under any accepted encoding. It is not retried; it
// propagates to the calling phase controller.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse structured response from reply: %.200s", e.Raw)
}

// ParseStructured extracts a JSON object from a participant reply.
// Agents answer in three shapes: raw JSON, JSON inside a ```json fence,
// or JSON inside a bare ``` fence. The forms are tried in that order.
func ParseStructured(reply string) (Fields, error) {
	if fields, ok := tryJSON(reply); ok {
		return fields, nil
	}
	if body, ok := fencedBlock(reply, "```json"); ok {
		if fields, ok := tryJSON(body); ok {
			return fields, nil
		}
	}
	if body, ok := fencedBlock(reply, "```"); ok {
		if fields, ok := tryJSON(body); ok {
			return fields, nil
		}
	}
	return nil, &ParseError{Raw: reply}
}

func tryJSON(s string) (Fields, bool) {
	var fields Fields
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// fencedBlock returns the text between the opening marker's line and the
// closing ``` fence
func fencedBlock(s, marker string) (string, bool) {
	start := strings.Index(s, marker)
	if start == -1 {
		return "", false
	}
	nl := strings.Index(s[start:], "\n")
	if nl == -1 {
		return "", false
	}
	body := s[start+nl+1:]
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}
