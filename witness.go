package subsumecheck

// Diagnosis is the structured explanation attached to a counterexample: the
// producer leaves the witness satisfied and the consumer leaves it violated,
// named by their labels (§3, §6 "structured diagnosis").
type Diagnosis struct {
	Witness       Value
	SatisfiedP    []*Label
	ViolatedC     []*Label
	Recommendations []string
}

// diagnose evaluates every collected leaf of producer and consumer against
// the witness and partitions them into "held on the producer side" and
// "failed on the consumer side" — the two lists the CLI and API report back
// to the caller (§6 step 3).
func diagnose(witness Value, universe *Universe, producerLeaves, consumerLeaves []*Leaf) Diagnosis {
	d := Diagnosis{Witness: witness}

	for _, leaf := range producerLeaves {
		if leaf.Eval(witness, universe) {
			d.SatisfiedP = append(d.SatisfiedP, leaf.Label)
		}
	}
	for _, leaf := range consumerLeaves {
		if !leaf.Eval(witness, universe) {
			d.ViolatedC = append(d.ViolatedC, leaf.Label)
		}
	}

	seen := map[string]bool{}
	for _, label := range d.ViolatedC {
		rec := recommendationFor(label)
		if rec == "" || seen[rec] {
			continue
		}
		seen[rec] = true
		d.Recommendations = append(d.Recommendations, rec)
	}

	return d
}
