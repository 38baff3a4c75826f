package subsumecheck

// compileAllOf translates "allOf": the value must satisfy every branch.
func compileAllOf(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.AllOf) == 0 {
		return nil, nil
	}
	branches := make([]*Constraint, len(s.AllOf))
	for i, child := range s.AllOf {
		c, err := CompileSchema(cc, child, path+"/allOf/"+itoa(i))
		if err != nil {
			return nil, err
		}
		branches[i] = c
	}
	return and(branches...), nil
}
