package subsumecheck

// compileMultipleOf translates "multipleOf": numeric Values must divide the
// configured step to an exact integer quotient, using big.Rat so a value
// like 0.1 never suffers float64 remainder error.
func compileMultipleOf(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MultipleOf == nil {
		return nil, nil
	}
	step := s.MultipleOf
	label := cc.labels.New(cc.side, path, "multipleOf")
	return leaf(label, func(v Value, u *Universe) bool {
		if !v.IsNumeric() {
			return true
		}
		return ratIsMultipleOf(v.Num, step)
	}), nil
}
