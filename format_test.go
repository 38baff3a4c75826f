package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFormatEmail(t *testing.T) {
	c := compileForTest(t, SideConsumer, `{"format": "email"}`)
	u := NewUniverse(nil, 3)
	assert.True(t, c.Eval(StrValue("a@example.com"), u))
	assert.False(t, c.Eval(StrValue("not-an-email"), u))
}

func TestCompileFormatUnknownRejected(t *testing.T) {
	s, err := ParseSchema([]byte(`{"format": "not-a-real-format"}`))
	require.NoError(t, err)
	_, err = CompileSchema(&compileCtx{side: SideProducer, labels: newLabelRegistry()}, s, "")
	var uke *UnsupportedKeywordError
	require.ErrorAs(t, err, &uke)
}

func TestCompilePatternUnsupportedRegexRejected(t *testing.T) {
	s, err := ParseSchema([]byte(`{"pattern": "(?<=foo)bar"}`))
	require.NoError(t, err)
	_, err = CompileSchema(&compileCtx{side: SideProducer, labels: newLabelRegistry()}, s, "")
	var ure *UnsupportedRegexError
	require.ErrorAs(t, err, &ure)
}

func TestSynthesizeMatchLiteralAndRepeat(t *testing.T) {
	witness, ok := synthesizeMatch("abc")
	require.True(t, ok)
	assert.Equal(t, "abc", witness)

	witness, ok = synthesizeMatch("a{3}")
	require.True(t, ok)
	assert.Equal(t, "aaa", witness)
}
