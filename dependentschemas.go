package subsumecheck

// compileDependentSchemas translates "dependentSchemas": if the trigger key
// is present on an object Value, the whole object must also satisfy the
// associated subschema.
func compileDependentSchemas(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if len(s.DependentSchemas) == 0 {
		return nil, nil
	}

	compiled := make(map[string]*Constraint, len(s.DependentSchemas))
	var leaves []*Leaf
	for _, trigger := range sortedKeysAny(s.DependentSchemas) {
		c, err := CompileSchema(cc, s.DependentSchemas[trigger], path+"/dependentSchemas/"+jsonPointerEscape(trigger))
		if err != nil {
			return nil, err
		}
		compiled[trigger] = c
		leaves = append(leaves, c.Leaves...)
	}

	return &Constraint{
		Leaves: leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindObj {
				return true
			}
			for trigger, c := range compiled {
				if _, present := v.Obj[trigger]; !present {
					continue
				}
				if !c.Eval(v, u) {
					return false
				}
			}
			return true
		},
	}, nil
}
