package subsumecheck

// compileExclusiveMinimum translates "exclusiveMinimum" (Draft 2019-09+
// numeric form, not the Draft-4 boolean form): numeric Values must be
// strictly greater than the bound.
func compileExclusiveMinimum(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.ExclusiveMinimum == nil {
		return nil, nil
	}
	bound := s.ExclusiveMinimum
	label := cc.labels.New(cc.side, path, "exclusiveMinimum")
	return leaf(label, func(v Value, u *Universe) bool {
		if !v.IsNumeric() {
			return true
		}
		return v.Num.Cmp(bound.Rat) > 0
	}), nil
}
