package subsumecheck

// compileOneOf translates "oneOf": the value must satisfy exactly one branch.
func compileOneOf(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.OneOf) == 0 {
		return nil, nil
	}
	branches := make([]*Constraint, len(s.OneOf))
	for i, child := range s.OneOf {
		c, err := CompileSchema(cc, child, path+"/oneOf/"+itoa(i))
		if err != nil {
			return nil, err
		}
		branches[i] = c
	}
	return exactlyOne(branches...), nil
}
