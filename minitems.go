package subsumecheck

// compileMinItems translates "minItems": array Values must have at least
// this many elements.
func compileMinItems(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MinItems == nil {
		return nil, nil
	}
	bound := int(*s.MinItems)
	label := cc.labels.New(cc.side, path, "minItems")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindArr {
			return true
		}
		return len(v.Arr) >= bound
	}), nil
}
