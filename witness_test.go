package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosePartitionsLeaves(t *testing.T) {
	labels := newLabelRegistry()
	producerLabel := labels.New(SideProducer, "", "type")
	consumerLabel := labels.New(SideConsumer, "", "minimum")

	producerLeaves := []*Leaf{{Label: producerLabel, Eval: func(Value, *Universe) bool { return true }}}
	consumerLeaves := []*Leaf{{Label: consumerLabel, Eval: func(v Value, u *Universe) bool {
		return v.IsNumeric() && v.Num.Cmp(NewRat(10).Rat) >= 0
	}}}

	witness := IntValue(NewRat(3))
	u := NewUniverse(nil, 3)

	d := diagnose(witness, u, producerLeaves, consumerLeaves)
	require.Len(t, d.SatisfiedP, 1)
	require.Len(t, d.ViolatedC, 1)
	assert.Equal(t, "P:/type", d.SatisfiedP[0].String())
	assert.Equal(t, "C:/minimum", d.ViolatedC[0].String())
	assert.Contains(t, d.Recommendations, recommendationTable["minimum"])
}

func TestRecommendationForStripsFormatSuffix(t *testing.T) {
	label := &Label{Side: SideConsumer, Path: "/contact", Keyword: "format:email"}
	assert.Equal(t, recommendationTable["format"], recommendationFor(label))
}

func TestNewCounterexampleBuildsResult(t *testing.T) {
	d := Diagnosis{
		Witness:         StrValue("x"),
		SatisfiedP:      []*Label{{Side: SideProducer, Path: "", Keyword: "type"}},
		ViolatedC:       []*Label{{Side: SideConsumer, Path: "", Keyword: "pattern"}},
		Recommendations: []string{"relax the pattern"},
	}
	r := newCounterexample(d)
	assert.False(t, r.Subsumed)
	assert.Equal(t, "x", r.Witness)
	assert.Len(t, r.ViolatedInC, 1)
	assert.Equal(t, "C:/pattern", r.ViolatedInC[0].Label)
}
