package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredRawJSON(t *testing.T) {
	fields, err := ParseStructured(`{"player_id": "p1", "reason": "suspicious"}`)
	require.NoError(t, err)

	id, err := fields.String("player_id")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
}

func TestParseStructuredJSONFence(t *testing.T) {
	reply := "Here is my decision:\n```json\n{\"player_id\": \"p2\"}\n```\nThanks."
	fields, err := ParseStructured(reply)
	require.NoError(t, err)

	id, err := fields.String("player_id")
	require.NoError(t, err)
	assert.Equal(t, "p2", id)
}

func TestParseStructuredBareFence(t *testing.T) {
	reply := "```\n{\"bid_amount\": 4}\n```"
	fields, err := ParseStructured(reply)
	require.NoError(t, err)

	amount, err := fields.Int("bid_amount")
	require.NoError(t, err)
	assert.Equal(t, 4, amount)
}

func TestParseStructuredLeadingWhitespace(t *testing.T) {
	fields, err := ParseStructured("  \n {\"message\": \"hello\"} \n")
	require.NoError(t, err)

	msg, err := fields.String("message")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg)
}

func TestParseStructuredUnparseable(t *testing.T) {
	_, err := ParseStructured("I vote for p1 because they seem quiet")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Raw, "I vote for p1")
}

func TestParseStructuredUnterminatedFence(t *testing.T) {
	_, err := ParseStructured("```json\n{\"player_id\": \"p1\"}")

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFieldsInt(t *testing.T) {
	fields := Fields{
		"number":  float64(7),
		"string":  "12",
		"spaced":  " 3 ",
		"garbage": "lots",
		"list":    []any{1},
	}

	n, err := fields.Int("number")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = fields.Int("string")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	n, err = fields.Int("spaced")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = fields.Int("garbage")
	assert.Error(t, err)

	_, err = fields.Int("list")
	assert.Error(t, err)

	_, err = fields.Int("missing")
	assert.Error(t, err)
}

func TestFieldsString(t *testing.T) {
	fields := Fields{"name": "p1", "count": float64(2)}

	name, err := fields.String("name")
	require.NoError(t, err)
	assert.Equal(t, "p1", name)

	_, err = fields.String("count")
	assert.Error(t, err)

	_, err = fields.String("missing")
	assert.Error(t, err)
}
