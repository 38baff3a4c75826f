package subsumecheck

import "github.com/kaptinlin/go-i18n"

// ViolationDetail names one violated consumer constraint and the
// recommendation for widening it, in the structured shape the CLI and any
// API caller render back to a user (§6 step 3/4).
type ViolationDetail struct {
	Label          string `json:"label"`
	Recommendation string `json:"recommendation,omitempty"`

	keyword string
}

// LocalizedRecommendation renders this single violation's recommendation
// through localizer, falling back to the plain English text when localizer
// is nil or has no translation for it.
func (v ViolationDetail) LocalizedRecommendation(localizer *i18n.Localizer) string {
	if localizer == nil {
		return v.Recommendation
	}
	if msg := localizer.Get(recommendationCode(v.keyword), i18n.Vars(nil)); msg != "" {
		return msg
	}
	return v.Recommendation
}

// SubsumptionResult is the outcome of one Check call: either a confirmation
// that every value accepted by the producer schema is also accepted by the
// consumer, or a counterexample with its diagnosis.
type SubsumptionResult struct {
	Subsumed bool `json:"subsumed"`

	Witness         any               `json:"witness,omitempty"`
	SatisfiedByP    []string          `json:"satisfiedByProducer,omitempty"`
	ViolatedInC     []ViolationDetail `json:"violatedInConsumer,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`

	code   string
	params map[string]any
}

// newSubsumed builds the positive result (§6 "Subsumed").
func newSubsumed() *SubsumptionResult {
	return &SubsumptionResult{Subsumed: true, code: "result.subsumed"}
}

// newCounterexample builds the negative result from a solved Diagnosis
// (§6 "NotSubsumed").
func newCounterexample(d Diagnosis) *SubsumptionResult {
	r := &SubsumptionResult{
		Subsumed:        false,
		Witness:         d.Witness.ToJSON(),
		Recommendations: d.Recommendations,
		code:            "result.notSubsumed",
		params:          map[string]any{"violationCount": len(d.ViolatedC)},
	}
	for _, l := range d.SatisfiedP {
		r.SatisfiedByP = append(r.SatisfiedByP, l.String())
	}
	for _, l := range d.ViolatedC {
		r.ViolatedInC = append(r.ViolatedInC, ViolationDetail{
			Label:          l.String(),
			Recommendation: recommendationFor(l),
			keyword:        baseKeyword(l.Keyword),
		})
	}
	return r
}

func (r *SubsumptionResult) Error() string {
	if r.Subsumed {
		return "producer schema is subsumed by consumer schema"
	}
	return "producer schema is not subsumed by consumer schema: found a counterexample"
}

// Localize renders a human-readable summary of the result using the given
// localizer, falling back to Error() when localizer is nil (the same
// fallback pattern used for evaluation errors elsewhere in this package).
func (r *SubsumptionResult) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return r.Error()
	}
	return localizer.Get(r.code, i18n.Vars(r.params))
}

// LocalizedRecommendations renders each violated constraint's recommendation
// through localizer, deduping by rendered text the same way Recommendations
// is deduped in English. A nil localizer returns Recommendations unchanged.
func (r *SubsumptionResult) LocalizedRecommendations(localizer *i18n.Localizer) []string {
	if localizer == nil {
		return r.Recommendations
	}
	var out []string
	seen := map[string]bool{}
	for _, v := range r.ViolatedInC {
		msg := localizer.Get(recommendationCode(v.keyword), i18n.Vars(nil))
		if msg == "" || seen[msg] {
			continue
		}
		seen[msg] = true
		out = append(out, msg)
	}
	return out
}
