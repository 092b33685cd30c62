package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCreated_BareShape(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(
		`{"id":1001,"customer":{"phone":"+15551234567","first_name":"Ana"}}`))
	require.NoError(t, err)

	assert.Equal(t, "1001", in.ID)
	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, "+15551234567", in.Phone)
}

func TestNormalizeCreated_NestedShape(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(
		`{"order":{"id":"abc-7","customer":{"phone":"+15550000000","first_name":"Bo"}}}`))
	require.NoError(t, err)

	assert.Equal(t, "abc-7", in.ID)
	assert.Equal(t, "Bo", in.Name)
	assert.Equal(t, "+15550000000", in.Phone)
}

func TestNormalizeCreated_IDBeatsName(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(
		`{"id":1001,"name":"#1001","customer":{"phone":"+1"}}`))
	require.NoError(t, err)

	assert.Equal(t, "1001", in.ID)
}

func TestNormalizeCreated_NameFallback(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(
		`{"name":"#1001","customer":{"phone":"+1"}}`))
	require.NoError(t, err)

	assert.Equal(t, "#1001", in.ID)
}

func TestNormalizeCreated_SynthesizedID(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(`{"customer":{"phone":"+1"}}`))
	require.NoError(t, err)

	require.NotEmpty(t, in.ID)
	for _, r := range in.ID {
		assert.True(t, r >= '0' && r <= '9', "synthesized id should be timestamp digits, got %q", in.ID)
	}
}

func TestNormalizeCreated_DefaultName(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(`{"id":"1","customer":{"phone":"+1"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Customer", in.Name)
}

func TestNormalizeCreated_LargeNumericID(t *testing.T) {
	// json.Number keeps the literal, no float exponent mangling
	in, err := NormalizeCreated(strings.NewReader(
		`{"id":4567890123456789,"customer":{"phone":"+1"}}`))
	require.NoError(t, err)

	assert.Equal(t, "4567890123456789", in.ID)
}

func TestNormalizeCreated_MissingPhone(t *testing.T) {
	in, err := NormalizeCreated(strings.NewReader(`{"id":"1","customer":{"first_name":"Ana"}}`))
	require.NoError(t, err)

	assert.Empty(t, in.Phone)
}

func TestNormalizeCreated_InvalidJSON(t *testing.T) {
	_, err := NormalizeCreated(strings.NewReader(`{not json`))
	assert.Error(t, err)
}

func TestParseStageEvent(t *testing.T) {
	id, err := ParseStageEvent(strings.NewReader(`{"order_id":"1001"}`))
	require.NoError(t, err)
	assert.Equal(t, "1001", id)

	id, err = ParseStageEvent(strings.NewReader(`{"order_id":1001}`))
	require.NoError(t, err)
	assert.Equal(t, "1001", id)

	id, err = ParseStageEvent(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, id)

	_, err = ParseStageEvent(strings.NewReader(`nope`))
	assert.Error(t, err)
}
