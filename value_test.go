package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEqualCrossNumeric(t *testing.T) {
	assert.True(t, IntValue(NewRat(1)).Equal(RealValue(NewRat("1.0"))))
	assert.False(t, IntValue(NewRat(1)).Equal(IntValue(NewRat(2))))
}

func TestValueEqualStructural(t *testing.T) {
	a := ArrValue([]Value{StrValue("x"), IntValue(NewRat(1))})
	b := ArrValue([]Value{StrValue("x"), IntValue(NewRat(1))})
	c := ArrValue([]Value{StrValue("x"), IntValue(NewRat(2))})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	o1 := ObjValue(map[string]Value{"a": BoolValue(true)})
	o2 := ObjValue(map[string]Value{"a": BoolValue(true)})
	o3 := ObjValue(map[string]Value{"a": BoolValue(false)})
	assert.True(t, o1.Equal(o2))
	assert.False(t, o1.Equal(o3))
}

func TestValueToJSON(t *testing.T) {
	v := ObjValue(map[string]Value{
		"name": StrValue("a"),
		"tags": ArrValue([]Value{IntValue(NewRat(1)), IntValue(NewRat(2))}),
	})
	out := v.ToJSON().(map[string]any)
	assert.Equal(t, "a", out["name"])
	assert.Len(t, out["tags"], 2)
}

func TestLiftRejectsOutOfUniverseKey(t *testing.T) {
	u := NewUniverse([]string{"allowed"}, 3)
	_, err := Lift(map[string]any{"forbidden": 1.0}, u)
	require.ErrorIs(t, err, ErrKeyOutOfUniverse)
}

func TestLiftRejectsOverlongArray(t *testing.T) {
	u := NewUniverse(nil, 1)
	_, err := Lift([]any{1.0, 2.0}, u)
	require.ErrorIs(t, err, ErrArrayTooLong)
}

func TestLiftNumberKinds(t *testing.T) {
	u := NewUniverse(nil, 3)
	intVal, err := Lift(float64(4), u)
	require.NoError(t, err)
	assert.Equal(t, KindInt, intVal.Kind)

	realVal, err := Lift(4.5, u)
	require.NoError(t, err)
	assert.Equal(t, KindReal, realVal.Kind)
}
