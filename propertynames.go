package subsumecheck

// compilePropertyNames translates "propertyNames": every key of an object
// Value, considered as a string Value, must satisfy the subschema.
func compilePropertyNames(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.PropertyNames == nil {
		return nil, nil
	}
	inner, err := CompileSchema(cc, s.PropertyNames, path+"/propertyNames")
	if err != nil {
		return nil, err
	}
	return &Constraint{
		Leaves: inner.Leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindObj {
				return true
			}
			for key := range v.Obj {
				if !inner.Eval(StrValue(key), u) {
					return false
				}
			}
			return true
		},
	}, nil
}
