package subsumecheck

// compileConst translates the "const" keyword into an equality leaf against
// the sealed literal, lifted once at compile time.
func compileConst(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Const == nil || !s.Const.IsSet {
		return nil, nil
	}
	want, err := Lift(s.Const.Value, nil)
	if err != nil {
		return nil, err
	}
	label := cc.labels.New(cc.side, path, "const")
	return leaf(label, func(v Value, u *Universe) bool {
		return v.Equal(want)
	}), nil
}
