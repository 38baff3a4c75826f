package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileItemsTupleAndRemainder(t *testing.T) {
	c := compileForTest(t, SideProducer, `{
		"prefixItems": [{"type": "string"}],
		"items": {"type": "integer"}
	}`)
	u := NewUniverse(nil, 3)

	ok := ArrValue([]Value{StrValue("a"), IntValue(NewRat(1)), IntValue(NewRat(2))})
	assert.True(t, c.Eval(ok, u))

	badTuple := ArrValue([]Value{IntValue(NewRat(1))})
	assert.False(t, c.Eval(badTuple, u))

	badRemainder := ArrValue([]Value{StrValue("a"), StrValue("not an int")})
	assert.False(t, c.Eval(badRemainder, u))
}

func TestCompilePrefixItemsWithoutTailCapsArrayLength(t *testing.T) {
	c := compileForTest(t, SideProducer, `{"prefixItems": [{"type": "string"}, {"type": "integer"}]}`)
	u := NewUniverse(nil, 5)

	exact := ArrValue([]Value{StrValue("a"), IntValue(NewRat(1))})
	assert.True(t, c.Eval(exact, u))

	shorter := ArrValue([]Value{StrValue("a")})
	assert.True(t, c.Eval(shorter, u))

	longer := ArrValue([]Value{StrValue("a"), IntValue(NewRat(1)), StrValue("extra")})
	assert.False(t, c.Eval(longer, u))
}

func TestCompileContainsMinMax(t *testing.T) {
	c := compileForTest(t, SideProducer, `{
		"contains": {"type": "string"},
		"minContains": 2,
		"maxContains": 2
	}`)
	u := NewUniverse(nil, 3)

	assert.True(t, c.Eval(ArrValue([]Value{StrValue("a"), StrValue("b"), IntValue(NewRat(1))}), u))
	assert.False(t, c.Eval(ArrValue([]Value{StrValue("a")}), u))
	assert.False(t, c.Eval(ArrValue([]Value{StrValue("a"), StrValue("b"), StrValue("c")}), u))
}

func TestCompileUniqueItems(t *testing.T) {
	c := compileForTest(t, SideProducer, `{"uniqueItems": true}`)
	u := NewUniverse(nil, 3)

	assert.True(t, c.Eval(ArrValue([]Value{IntValue(NewRat(1)), IntValue(NewRat(2))}), u))
	assert.False(t, c.Eval(ArrValue([]Value{IntValue(NewRat(1)), IntValue(NewRat(1))}), u))
}
