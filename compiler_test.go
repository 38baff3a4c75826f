package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileForTest(t *testing.T, side Side, raw string) *Constraint {
	t.Helper()
	s, err := ParseSchema([]byte(raw))
	require.NoError(t, err)
	inlined, err := ResolveAndInline(s)
	require.NoError(t, err)
	c, err := CompileSchema(&compileCtx{side: side, labels: newLabelRegistry()}, inlined, "")
	require.NoError(t, err)
	return c
}

func TestCompileSchemaBooleanTrue(t *testing.T) {
	c := compileForTest(t, SideProducer, `true`)
	assert.True(t, c.Eval(NullValue(), nil))
}

func TestCompileSchemaBooleanFalse(t *testing.T) {
	c := compileForTest(t, SideProducer, `false`)
	assert.False(t, c.Eval(NullValue(), nil))
}

func TestCompileSchemaTypeAndMinimum(t *testing.T) {
	c := compileForTest(t, SideProducer, `{"type": "integer", "minimum": 5}`)
	u := NewUniverse(nil, 3)
	assert.True(t, c.Eval(IntValue(NewRat(5)), u))
	assert.False(t, c.Eval(IntValue(NewRat(4)), u))
	assert.False(t, c.Eval(StrValue("x"), u))
}

func TestCompileSchemaRequiredAndProperties(t *testing.T) {
	c := compileForTest(t, SideConsumer, `{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`)
	u := NewUniverse([]string{"name"}, 3)
	assert.True(t, c.Eval(ObjValue(map[string]Value{"name": StrValue("a")}), u))
	assert.False(t, c.Eval(ObjValue(map[string]Value{}), u))
	assert.False(t, c.Eval(ObjValue(map[string]Value{"name": IntValue(NewRat(1))}), u))
}

func TestCompileSchemaOneOf(t *testing.T) {
	c := compileForTest(t, SideProducer, `{
		"oneOf": [{"type": "string"}, {"type": "integer"}]
	}`)
	u := NewUniverse(nil, 3)
	assert.True(t, c.Eval(StrValue("x"), u))
	assert.True(t, c.Eval(IntValue(NewRat(1)), u))
	assert.False(t, c.Eval(BoolValue(true), u))
}

func TestCompileSchemaUnsupportedKeywordRejected(t *testing.T) {
	s, err := ParseSchema([]byte(`{"unevaluatedProperties": false}`))
	require.NoError(t, err)
	inlined, err := ResolveAndInline(s)
	require.NoError(t, err)
	_, err = CompileSchema(&compileCtx{side: SideProducer, labels: newLabelRegistry()}, inlined, "")
	var uke *UnsupportedKeywordError
	require.ErrorAs(t, err, &uke)
}

func TestCompileSchemaConditional(t *testing.T) {
	c := compileForTest(t, SideProducer, `{
		"if": {"properties": {"kind": {"const": "a"}}},
		"then": {"required": ["a_field"]},
		"else": {"required": ["b_field"]}
	}`)
	u := NewUniverse([]string{"kind", "a_field", "b_field"}, 3)
	assert.True(t, c.Eval(ObjValue(map[string]Value{"kind": StrValue("a"), "a_field": StrValue("x")}), u))
	assert.False(t, c.Eval(ObjValue(map[string]Value{"kind": StrValue("a")}), u))
	assert.True(t, c.Eval(ObjValue(map[string]Value{"kind": StrValue("z"), "b_field": StrValue("x")}), u))
}

func TestCompileSchemaLabelsDisambiguateOrdinal(t *testing.T) {
	labels := newLabelRegistry()
	l1 := labels.New(SideProducer, "/x", "minimum")
	l2 := labels.New(SideProducer, "/x", "minimum")
	assert.Equal(t, "P:/x/minimum", l1.String())
	assert.Equal(t, "P:/x/minimum#2", l2.String())
}
