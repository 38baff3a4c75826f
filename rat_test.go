package subsumecheck

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatUnmarshalJSON(t *testing.T) {
	var r Rat
	require.NoError(t, json.Unmarshal([]byte("3.5"), &r))
	assert.Equal(t, "3.5", FormatRat(&r))
}

func TestRatMarshalJSONInteger(t *testing.T) {
	r := NewRat(5)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "5", string(data))
}

func TestRatMarshalJSONFraction(t *testing.T) {
	r := NewRat("1/3")
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/")
}

func TestRatEqual(t *testing.T) {
	assert.True(t, ratEqual(NewRat(1), NewRat("1.0")))
	assert.False(t, ratEqual(NewRat(1), NewRat(2)))
	assert.True(t, ratEqual(nil, nil))
	assert.False(t, ratEqual(NewRat(1), nil))
}

func TestRatIsMultipleOf(t *testing.T) {
	assert.True(t, ratIsMultipleOf(NewRat(9), NewRat(3)))
	assert.False(t, ratIsMultipleOf(NewRat(10), NewRat(3)))
	assert.True(t, ratIsMultipleOf(NewRat("0.3"), NewRat("0.1")))
	assert.False(t, ratIsMultipleOf(NewRat(1), NewRat(0)))
}

func TestNewRatUnsupportedType(t *testing.T) {
	assert.Nil(t, NewRat(struct{}{}))
}
