package subsumecheck

// compileMaxProperties translates "maxProperties", counted the same way as
// compileMinProperties.
func compileMaxProperties(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MaxProperties == nil {
		return nil, nil
	}
	bound := int(*s.MaxProperties)
	label := cc.labels.New(cc.side, path, "maxProperties")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindObj {
			return true
		}
		return len(v.Obj) <= bound
	}), nil
}
