package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectBoundaryGathersNumericLiterals(t *testing.T) {
	producer := mustSchema(t, `{"type":"integer","minimum":3,"maximum":10}`)
	consumer := mustSchema(t, `{"type":"integer"}`)

	info := collectBoundary(producer, consumer)

	found3, found10 := false, false
	for _, n := range info.numbers {
		if n.Cmp(NewRat(3).Rat) == 0 {
			found3 = true
		}
		if n.Cmp(NewRat(10).Rat) == 0 {
			found10 = true
		}
	}
	assert.True(t, found3)
	assert.True(t, found10)
}

func TestCollectBoundaryUsesFormatWitness(t *testing.T) {
	producer := mustSchema(t, `{"type":"string","format":"email"}`)
	consumer := mustSchema(t, `{"type":"string"}`)

	info := collectBoundary(producer, consumer)
	assert.Contains(t, info.stringLiterals, "a@example.com")
}

func TestFormatWitnessKnownAndUnknown(t *testing.T) {
	w, ok := formatWitness("uuid")
	require.True(t, ok)
	assert.Len(t, w, 36)

	_, ok = formatWitness("not-a-format")
	assert.False(t, ok)
}
