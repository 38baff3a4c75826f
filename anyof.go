package subsumecheck

// compileAnyOf translates "anyOf": the value must satisfy at least one branch.
func compileAnyOf(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.AnyOf) == 0 {
		return nil, nil
	}
	branches := make([]*Constraint, len(s.AnyOf))
	for i, child := range s.AnyOf {
		c, err := CompileSchema(cc, child, path+"/anyOf/"+itoa(i))
		if err != nil {
			return nil, err
		}
		branches[i] = c
	}
	return or(branches...), nil
}
