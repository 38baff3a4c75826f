package subsumecheck

// compileEnum translates the "enum" keyword into a disjunction of equality
// checks against each lifted enumerated literal.
func compileEnum(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.Enum) == 0 {
		return nil, nil
	}
	wanted := make([]Value, 0, len(s.Enum))
	for _, literal := range s.Enum {
		lifted, err := Lift(literal, nil)
		if err != nil {
			return nil, err
		}
		wanted = append(wanted, lifted)
	}
	label := cc.labels.New(cc.side, path, "enum")
	return leaf(label, func(v Value, u *Universe) bool {
		for _, w := range wanted {
			if v.Equal(w) {
				return true
			}
		}
		return false
	}), nil
}
