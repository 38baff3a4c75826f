package subsumecheck

// compileMinProperties translates "minProperties". Because every object
// Value's keys are drawn from the sealed Universe (Lift rejects anything
// else), counting v.Obj directly is equivalent to summing the has(x,k)
// indicator over Keys (§9 Open Question iii) without an existential over
// arbitrary strings.
func compileMinProperties(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.MinProperties == nil {
		return nil, nil
	}
	bound := int(*s.MinProperties)
	label := cc.labels.New(cc.side, path, "minProperties")
	return leaf(label, func(v Value, u *Universe) bool {
		if v.Kind != KindObj {
			return true
		}
		return len(v.Obj) >= bound
	}), nil
}
