package subsumecheck

// compileExclusiveMaximum translates "exclusiveMaximum": numeric Values
// must be strictly less than the bound.
func compileExclusiveMaximum(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.ExclusiveMaximum == nil {
		return nil, nil
	}
	bound := s.ExclusiveMaximum
	label := cc.labels.New(cc.side, path, "exclusiveMaximum")
	return leaf(label, func(v Value, u *Universe) bool {
		if !v.IsNumeric() {
			return true
		}
		return v.Num.Cmp(bound.Rat) < 0
	}), nil
}
