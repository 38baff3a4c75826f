package subsumecheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveFindsCounterexampleForNarrowerMinimum(t *testing.T) {
	producer := compileForTest(t, SideProducer, `{"type": "integer", "minimum": 0}`)
	consumer := compileForTest(t, SideConsumer, `{"type": "integer", "minimum": 5}`)

	u := NewUniverse(nil, 3)
	info := collectBoundary(mustSchema(t, `{"type": "integer", "minimum": 0}`), mustSchema(t, `{"type": "integer", "minimum": 5}`))

	result, err := Solve(context.Background(), producer, consumer, u, info)
	require.NoError(t, err)
	require.True(t, result.SAT)
	assert.True(t, producer.Eval(result.Witness, u))
	assert.False(t, consumer.Eval(result.Witness, u))
}

func TestSolveUnsatWhenConsumerIsWider(t *testing.T) {
	producer := compileForTest(t, SideProducer, `{"type": "integer", "minimum": 5}`)
	consumer := compileForTest(t, SideConsumer, `{"type": "integer", "minimum": 0}`)

	u := NewUniverse(nil, 3)
	info := collectBoundary(mustSchema(t, `{"type": "integer", "minimum": 5}`), mustSchema(t, `{"type": "integer", "minimum": 0}`))

	result, err := Solve(context.Background(), producer, consumer, u, info)
	require.NoError(t, err)
	assert.False(t, result.SAT)
}

func TestSolveRespectsTimeout(t *testing.T) {
	producer := compileForTest(t, SideProducer, `{"type": "integer", "minimum": 0}`)
	consumer := compileForTest(t, SideConsumer, `{"type": "integer", "minimum": 5}`)
	u := NewUniverse(nil, 3)
	info := collectBoundary(mustSchema(t, `{"type": "integer", "minimum": 0}`), mustSchema(t, `{"type": "integer", "minimum": 5}`))

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := Solve(ctx, producer, consumer, u, info)
	require.Error(t, err)
}

func TestSolveExceedsBoundForTooManyKeys(t *testing.T) {
	keys := make([]string, maxBruteForceKeys+1)
	for i := range keys {
		keys[i] = string(rune('a' + i))
	}
	u := NewUniverse(keys, 1)
	producer := always(true)
	consumer := always(false)
	_, err := Solve(context.Background(), producer, consumer, u, boundaryInfo{})
	require.ErrorIs(t, err, ErrBoundExceeded)
}

func TestRepresentativeSampleSpansDistinctKinds(t *testing.T) {
	vs := []Value{NullValue(), BoolValue(false), BoolValue(true), IntValue(NewRat(1)), StrValue("x")}
	sample := representativeSample(vs, 5)

	kinds := map[Kind]bool{}
	for _, v := range sample {
		kinds[v.Kind] = true
	}
	assert.True(t, kinds[KindStr], "sample should include a string candidate")
	assert.True(t, kinds[KindInt], "sample should include an integer candidate")
}

func TestKeyAssignmentsVariesValuesAcrossKeys(t *testing.T) {
	sample := []Value{StrValue(""), IntValue(NewRat(0))}
	assignments := keyAssignments([]string{"a", "b"}, sample)

	found := false
	for _, fields := range assignments {
		if fields["a"].Kind == KindStr && fields["b"].Kind == KindInt {
			found = true
			break
		}
	}
	assert.True(t, found, "expected an assignment where a and b take different Kinds")
}

func TestPositionAssignmentsVariesValuesAcrossIndices(t *testing.T) {
	sample := []Value{StrValue(""), IntValue(NewRat(0))}
	assignments := positionAssignments(2, sample)

	found := false
	for _, arr := range assignments {
		if arr[0].Kind == KindStr && arr[1].Kind == KindInt {
			found = true
			break
		}
	}
	assert.True(t, found, "expected an array assignment with differing Kinds per index")
}

func mustSchema(t *testing.T, raw string) *Schema {
	t.Helper()
	s, err := ParseSchema([]byte(raw))
	require.NoError(t, err)
	inlined, err := ResolveAndInline(s)
	require.NoError(t, err)
	return inlined
}
