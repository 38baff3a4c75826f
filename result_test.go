package subsumecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsumedResultLocalizeFallback(t *testing.T) {
	r := newSubsumed()
	assert.Equal(t, r.Error(), r.Localize(nil))
}

func TestGetI18nLoadsEmbeddedLocales(t *testing.T) {
	bundle, err := GetI18n()
	require.NoError(t, err)
	require.NotNil(t, bundle)
}

func TestLocalizedRecommendationsFallBackWithoutLocalizer(t *testing.T) {
	d := Diagnosis{
		Witness:         IntValue(NewRat(0)),
		ViolatedC:       []*Label{{Side: SideConsumer, Path: "", Keyword: "minimum"}},
		Recommendations: []string{recommendationTable["minimum"]},
	}
	r := newCounterexample(d)
	assert.Equal(t, r.Recommendations, r.LocalizedRecommendations(nil))
	assert.Equal(t, r.ViolatedInC[0].Recommendation, r.ViolatedInC[0].LocalizedRecommendation(nil))
}

func TestLocalizedRecommendationsUseLoadedLocale(t *testing.T) {
	bundle, err := GetI18n()
	require.NoError(t, err)
	zh := bundle.NewLocalizer("zh-Hans")

	d := Diagnosis{
		Witness:   IntValue(NewRat(0)),
		ViolatedC: []*Label{{Side: SideConsumer, Path: "", Keyword: "minimum"}},
	}
	r := newCounterexample(d)
	recs := r.LocalizedRecommendations(zh)
	require.Len(t, recs, 1)
	assert.NotEqual(t, recommendationTable["minimum"], recs[0])
	assert.Equal(t, recs[0], r.ViolatedInC[0].LocalizedRecommendation(zh))
}
