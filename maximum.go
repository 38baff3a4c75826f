package subsumecheck

// compileMaximum translates "maximum": non-numeric Values always satisfy
// it, numeric Values must be <= the bound.
func compileMaximum(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Maximum == nil {
		return nil, nil
	}
	bound := s.Maximum
	label := cc.labels.New(cc.side, path, "maximum")
	return leaf(label, func(v Value, u *Universe) bool {
		if !v.IsNumeric() {
			return true
		}
		return v.Num.Cmp(bound.Rat) <= 0
	}), nil
}
