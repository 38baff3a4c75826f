package subsumecheck

// compileMinimum translates "minimum": non-numeric Values always satisfy
// it, numeric Values must be >= the bound.
func compileMinimum(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Minimum == nil {
		return nil, nil
	}
	bound := s.Minimum
	label := cc.labels.New(cc.side, path, "minimum")
	return leaf(label, func(v Value, u *Universe) bool {
		if !v.IsNumeric() {
			return true
		}
		return v.Num.Cmp(bound.Rat) >= 0
	}), nil
}
