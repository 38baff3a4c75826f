package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectUniverseGathersKeysFromBothSchemas(t *testing.T) {
	producer, err := ParseSchema([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`))
	require.NoError(t, err)

	consumer, err := ParseSchema([]byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}, "age": {"type": "integer"}},
		"dependentRequired": {"age": ["name"]}
	}`))
	require.NoError(t, err)

	u := CollectUniverse(producer, consumer)
	assert.Contains(t, u.Keys, "name")
	assert.Contains(t, u.Keys, "age")
}

func TestCollectUniverseDerivesMaxArrayLenFromPrefixItems(t *testing.T) {
	producer, err := ParseSchema([]byte(`{
		"type": "array",
		"prefixItems": [{"type": "string"}, {"type": "number"}, {"type": "boolean"}]
	}`))
	require.NoError(t, err)
	consumer, err := ParseSchema([]byte(`true`))
	require.NoError(t, err)

	u := CollectUniverse(producer, consumer)
	assert.GreaterOrEqual(t, u.MaxArrayLen, 4)
}

func TestUniverseHasKeyNilIsPermissive(t *testing.T) {
	var u *Universe
	assert.True(t, u.HasKey("anything"))
}

func TestNewUniverseDedupesAndSorts(t *testing.T) {
	u := NewUniverse([]string{"b", "a", "b"}, 2)
	assert.Equal(t, []string{"a", "b"}, u.Keys)
}
