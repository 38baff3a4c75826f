package subsumecheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name     string
		producer string
		consumer string
		subsumed bool
	}{
		{
			name:     "integer subsumed by number",
			producer: `{"type":"integer"}`,
			consumer: `{"type":"number"}`,
			subsumed: true,
		},
		{
			name:     "number not subsumed by integer",
			producer: `{"type":"number"}`,
			consumer: `{"type":"integer"}`,
			subsumed: false,
		},
		{
			name:     "longer minLength string subsumed by plain string",
			producer: `{"type":"string","minLength":5}`,
			consumer: `{"type":"string"}`,
			subsumed: true,
		},
		{
			name:     "string-or-number not subsumed by string",
			producer: `{"type":["string","number"]}`,
			consumer: `{"type":"string"}`,
			subsumed: false,
		},
		{
			name: "mismatched contact pattern",
			producer: `{"type":"object","required":["contact"],
				"properties":{"contact":{"type":"string","pattern":".*@.*"}}}`,
			consumer: `{"type":"object","required":["contact"],
				"properties":{"contact":{"type":"string","pattern":"^https?://.*"}}}`,
			subsumed: false,
		},
		{
			name:     "extra required keys subsumed by fewer",
			producer: `{"type":"object","required":["a","b"]}`,
			consumer: `{"type":"object","required":["a"]}`,
			subsumed: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Check(context.Background(), []byte(tc.producer), []byte(tc.consumer), WithTimeout(5*time.Second))
			require.NoError(t, err)
			assert.Equal(t, tc.subsumed, result.Subsumed)
			if !tc.subsumed {
				assert.NotNil(t, result.Witness)
				assert.NotEmpty(t, result.ViolatedInC)
			}
		})
	}
}

func TestCheckReflexivity(t *testing.T) {
	schemas := []string{
		`{"type":"integer","minimum":0}`,
		`{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`,
		`{"type":"array","items":{"type":"string"},"maxItems":2}`,
		`{"oneOf":[{"type":"string"},{"type":"integer"}]}`,
	}
	for _, raw := range schemas {
		result, err := Check(context.Background(), []byte(raw), []byte(raw), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.True(t, result.Subsumed, "schema should subsume itself: %s", raw)
	}
}

func TestCheckWitnessSoundness(t *testing.T) {
	producer := []byte(`{"type":"array","items":{"type":"string"}}`)
	consumer := []byte(`{"type":"array","items":{"type":"number"}}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.False(t, result.Subsumed)

	producerSchema := mustSchema(t, string(producer))
	consumerSchema := mustSchema(t, string(consumer))
	u := CollectUniverse(producerSchema, consumerSchema)

	pc, err := CompileSchema(&compileCtx{side: SideProducer, labels: newLabelRegistry()}, producerSchema, "")
	require.NoError(t, err)
	cc, err := CompileSchema(&compileCtx{side: SideConsumer, labels: newLabelRegistry()}, consumerSchema, "")
	require.NoError(t, err)

	witness, err := Lift(result.Witness, u)
	require.NoError(t, err)
	assert.True(t, pc.Eval(witness, u))
	assert.False(t, cc.Eval(witness, u))
}

func TestCheckAdditionalPropertiesFalseRejectsExtraKey(t *testing.T) {
	producer := []byte(`{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"string"}}}`)
	consumer := []byte(`{"type":"object","properties":{"a":{"type":"string"}},"additionalProperties":false}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.False(t, result.Subsumed)
}

func TestCheckConstSubsumedByEnum(t *testing.T) {
	producer := []byte(`{"const":"x"}`)
	consumer := []byte(`{"enum":["x","y"]}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.True(t, result.Subsumed)
}

func TestCheckDiffersTypedRequiredPropertiesNotSubsumed(t *testing.T) {
	producer := []byte(`{"type":"object","required":["a","b"],
		"properties":{"a":{"type":"string"},"b":{"type":"integer"}}}`)
	consumer := []byte(`{"type":"object","required":["a","b"],
		"properties":{"a":{"type":"string"},"b":{"type":"string"}}}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.False(t, result.Subsumed)

	producerSchema := mustSchema(t, string(producer))
	consumerSchema := mustSchema(t, string(consumer))
	u := CollectUniverse(producerSchema, consumerSchema)
	pc, err := CompileSchema(&compileCtx{side: SideProducer, labels: newLabelRegistry()}, producerSchema, "")
	require.NoError(t, err)
	cc, err := CompileSchema(&compileCtx{side: SideConsumer, labels: newLabelRegistry()}, consumerSchema, "")
	require.NoError(t, err)

	witness, err := Lift(result.Witness, u)
	require.NoError(t, err)
	assert.True(t, pc.Eval(witness, u))
	assert.False(t, cc.Eval(witness, u))
}

func TestCheckHeterogeneousPrefixItemsNotSubsumed(t *testing.T) {
	producer := []byte(`{"type":"array","prefixItems":[{"type":"string"},{"type":"integer"}]}`)
	consumer := []byte(`{"type":"array","prefixItems":[{"type":"string"},{"type":"string"}]}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.False(t, result.Subsumed)
}

func TestCheckPrefixItemsWithoutTailCapsLength(t *testing.T) {
	// Consumer has no "items", so per the tuple-with-no-tail rule it only
	// accepts arrays of length <= 1; a producer that allows a longer array
	// must not be reported as subsumed.
	producer := []byte(`{"type":"array","prefixItems":[{"type":"string"}],"items":{"type":"string"}}`)
	consumer := []byte(`{"type":"array","prefixItems":[{"type":"string"}]}`)

	result, err := Check(context.Background(), producer, consumer, WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.False(t, result.Subsumed)
}

func TestCheckMalformedSchemaError(t *testing.T) {
	_, err := Check(context.Background(), []byte(`{not json`), []byte(`true`))
	var malformed *MalformedSchemaError
	require.ErrorAs(t, err, &malformed)
}

func TestCheckUnresolvedReferenceError(t *testing.T) {
	_, err := Check(context.Background(), []byte(`{"$ref":"#/$defs/missing"}`), []byte(`true`))
	require.ErrorIs(t, err, ErrUnresolvedReference)
}
