package subsumecheck

// compileProperties translates "properties": each named property, if
// present on an object Value, must satisfy the corresponding subschema.
func compileProperties(cc *compileCtx, s *Schema, path string) (*Constraint, error) {
	if s.Properties == nil || len(*s.Properties) == 0 {
		return nil, nil
	}

	compiled := make(map[string]*Constraint, len(*s.Properties))
	var leaves []*Leaf
	for _, key := range sortedKeys(*s.Properties) {
		c, err := CompileSchema(cc, (*s.Properties)[key], path+"/properties/"+jsonPointerEscape(key))
		if err != nil {
			return nil, err
		}
		compiled[key] = c
		leaves = append(leaves, c.Leaves...)
	}

	return &Constraint{
		Leaves: leaves,
		Eval: func(v Value, u *Universe) bool {
			if v.Kind != KindObj {
				return true
			}
			for key, c := range compiled {
				if field, ok := v.Obj[key]; ok {
					if !c.Eval(field, u) {
						return false
					}
				}
			}
			return true
		},
	}, nil
}
