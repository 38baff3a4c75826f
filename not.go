package subsumecheck

// compileNot translates "not": the value must fail the named subschema.
func compileNot(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Not == nil {
		return nil, nil
	}
	c, err := CompileSchema(cc, s.Not, path+"/not")
	if err != nil {
		return nil, err
	}
	return negate(c), nil
}
